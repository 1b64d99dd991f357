package cordova

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleConfig = `<?xml version="1.0" encoding="utf-8"?>
<widget id="com.example.brand" version="2.1.0" xmlns="http://www.w3.org/ns/widgets">
    <name>Brand App</name>
    <description>splash test fixture</description>
    <preference name="SPLASH_GRADIENT" value="linear-gradient(64.28deg, #0F1C4D 0%, #377D69 100%)"/>
    <preference name="Orientation" value="portrait"/>
    <platform name="android">
        <preference name="SPLASH_GRADIENT" value="linear-gradient(90deg, #000000 0%, #FFFFFF 100%)"/>
    </platform>
    <platform name="ios"/>
</widget>
`

func TestRead(t *testing.T) {
	w, err := Read(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("can't read config: %s", err)
	}
	if w.ID != "com.example.brand" || w.Version != "2.1.0" {
		t.Errorf("widget identity wrong: %+v", w)
	}
	if w.Name != "Brand App" {
		t.Errorf("expected app name, got %q", w.Name)
	}
	if got := w.PlatformNames(); len(got) != 2 || got[0] != "android" || got[1] != "ios" {
		t.Errorf("unexpected platforms %v", got)
	}
}

func TestPreferenceLookup(t *testing.T) {
	w, err := Read(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("can't read config: %s", err)
	}

	v, ok := w.Preference(GradientPreference)
	if !ok || !strings.HasPrefix(v, "linear-gradient(64.28deg") {
		t.Errorf("global preference lookup failed: %q, %v", v, ok)
	}
	// names are case-insensitive
	if _, ok := w.Preference("splash_gradient"); !ok {
		t.Error("lookup must ignore case")
	}
	if _, ok := w.Preference("NoSuchPreference"); ok {
		t.Error("missing preference must report absence, not a default")
	}

	// the android block overrides the global expression
	v, ok = w.PreferenceFor("android", GradientPreference)
	if !ok || !strings.HasPrefix(v, "linear-gradient(90deg") {
		t.Errorf("platform override lost: %q, %v", v, ok)
	}
	// ios declares none and inherits the global one
	v, ok = w.PreferenceFor("ios", GradientPreference)
	if !ok || !strings.HasPrefix(v, "linear-gradient(64.28deg") {
		t.Errorf("platform fallthrough failed: %q, %v", v, ok)
	}
}

func TestReadDeclaredCharset(t *testing.T) {
	// the app name carries a latin-1 é, which only decodes through
	// the declared charset
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<widget id=\"com.example.latin\" version=\"1.0.0\"><name>Caf\xe9</name></widget>"
	w, err := Read(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("can't read latin-1 config: %s", err)
	}
	if w.Name != "Café" {
		t.Errorf("expected decoded name, got %q", w.Name)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.xml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := Load(path)
	if err != nil {
		t.Fatalf("can't load config: %s", err)
	}
	if w.Name != "Brand App" {
		t.Errorf("unexpected name %q", w.Name)
	}

	if _, err := Load(filepath.Join(dir, "absent.xml")); err == nil {
		t.Error("missing file must fail")
	}
	bad := filepath.Join(dir, "bad.xml")
	os.WriteFile(bad, []byte("<widget><unclosed"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("malformed xml must fail")
	}
}
