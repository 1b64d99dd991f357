package splash

import (
	"errors"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/splashgen/splashgen/gradient"
)

const expr = "linear-gradient(64.28deg, #0F1C4D 0%, #2E2E2E 51%, #377D69 100%)"

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRunEndToEnd(t *testing.T) {
	androidDir, iosDir := t.TempDir(), t.TempDir()
	p := New(WithLogger(quietLogger()))
	rep, err := p.Run(Request{
		Expression:   expr,
		Platforms:    []string{PlatformAndroid, PlatformIOS},
		AndroidDir:   androidDir,
		IOSDir:       iosDir,
		MasterWidth:  108,
		MasterHeight: 192,
		IOSSize:      64,
	})
	if err != nil {
		t.Fatalf("run failed: %s", err)
	}
	if rep.UsedFallback {
		t.Error("valid gradient must not fall back")
	}
	if len(rep.Failures) != 0 {
		t.Fatalf("unexpected failures: %v", rep.Failures)
	}
	// five android buckets, the ios png and its Contents.json
	if len(rep.Artifacts) != 7 {
		t.Fatalf("expected 7 artifacts, got %d: %v", len(rep.Artifacts), rep.Artifacts)
	}
	for _, path := range rep.Artifacts {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("reported artifact missing: %s", err)
		}
	}
	if _, err := os.Stat(filepath.Join(androidDir, "drawable-xhdpi", "screen.png")); err != nil {
		t.Errorf("xhdpi bucket missing: %s", err)
	}
	if _, err := os.Stat(filepath.Join(iosDir, "screen.imageset", "Contents.json")); err != nil {
		t.Errorf("imageset missing: %s", err)
	}
}

func TestRunFallbackSolid(t *testing.T) {
	dir := t.TempDir()
	p := New(WithLogger(quietLogger()))
	rep, err := p.Run(Request{
		Expression:  "solid #224466 please",
		Platforms:   []string{PlatformAndroid},
		AndroidDir:  dir,
		AndroidMode: ModeShape,
		Label:       "Brand Splash",
	})
	if err != nil {
		t.Fatalf("fallback must not be fatal: %s", err)
	}
	if !rep.UsedFallback {
		t.Fatal("expected the solid fallback")
	}
	if rep.FallbackColor != (gradient.Color{R: 0x22, G: 0x44, B: 0x66}) {
		t.Fatalf("expected the expression color, got %s", rep.FallbackColor.Hex())
	}
	data, err := os.ReadFile(filepath.Join(dir, "brand_splash.xml"))
	if err != nil {
		t.Fatalf("drawable missing: %s", err)
	}
	if !strings.Contains(string(data), `android:color="#224466"`) {
		t.Errorf("solid drawable wrong:\n%s", data)
	}
	if strings.Contains(string(data), "<gradient") {
		t.Error("fallback must not emit a gradient element")
	}
}

func TestRunFallbackDefaultColor(t *testing.T) {
	p := New(WithLogger(quietLogger()))
	rep, err := p.Run(Request{
		Expression:  "no colors at all",
		Platforms:   []string{PlatformAndroid},
		AndroidDir:  t.TempDir(),
		AndroidMode: ModeShape,
	})
	if err != nil {
		t.Fatalf("run failed: %s", err)
	}
	if rep.FallbackColor != DefaultFallback {
		t.Fatalf("expected %s, got %s", DefaultFallback.Hex(), rep.FallbackColor.Hex())
	}
}

type failingRasterizer struct{}

func (failingRasterizer) Rasterize([]byte, int, int) (*image.RGBA, error) {
	return nil, errors.New("engine exploded")
}

func TestRunSkipsFailedPlatform(t *testing.T) {
	p := New(WithRasterizer(failingRasterizer{}), WithLogger(quietLogger()))
	rep, err := p.Run(Request{
		Expression: expr,
		Platforms:  []string{PlatformAndroid, PlatformIOS},
		AndroidDir: t.TempDir(),
		IOSDir:     t.TempDir(),
	})
	if err != nil {
		t.Fatalf("render failures must not be fatal: %s", err)
	}
	if len(rep.Artifacts) != 0 {
		t.Errorf("no artifacts expected, got %v", rep.Artifacts)
	}
	if len(rep.Failures) != 2 {
		t.Fatalf("expected both platforms to be reported, got %v", rep.Failures)
	}
	for i, plat := range []string{PlatformAndroid, PlatformIOS} {
		if rep.Failures[i].Platform != plat {
			t.Errorf("failure %d: expected %s, got %s", i, plat, rep.Failures[i].Platform)
		}
	}
}

func TestRunPartialFailure(t *testing.T) {
	// shape mode needs no rasterizer, so android survives while ios
	// is skipped
	p := New(WithRasterizer(failingRasterizer{}), WithLogger(quietLogger()))
	rep, err := p.Run(Request{
		Expression:  expr,
		Platforms:   []string{PlatformAndroid, PlatformIOS},
		AndroidDir:  t.TempDir(),
		AndroidMode: ModeShape,
		IOSDir:      t.TempDir(),
	})
	if err != nil {
		t.Fatalf("run failed: %s", err)
	}
	if len(rep.Artifacts) != 1 {
		t.Fatalf("expected the android drawable, got %v", rep.Artifacts)
	}
	if len(rep.Failures) != 1 || rep.Failures[0].Platform != PlatformIOS {
		t.Fatalf("expected only ios to fail, got %v", rep.Failures)
	}
}

func TestRunWarnings(t *testing.T) {
	p := New(WithLogger(quietLogger()))
	rep, err := p.Run(Request{
		Expression:  "linear-gradient(0deg, #11223344 0%, #FFFFFF 100%)",
		Platforms:   []string{PlatformAndroid},
		AndroidDir:  t.TempDir(),
		AndroidMode: ModeShape,
	})
	if err != nil {
		t.Fatalf("run failed: %s", err)
	}
	if len(rep.Warnings) != 1 {
		t.Fatalf("expected the alpha warning, got %v", rep.Warnings)
	}
}

func TestRunRejectsBadRequests(t *testing.T) {
	p := New(WithLogger(quietLogger()))
	bad := []Request{
		{Expression: expr},
		{Expression: expr, Platforms: []string{"windows"}},
		{Expression: expr, Platforms: []string{PlatformAndroid}},
		{Expression: expr, Platforms: []string{PlatformIOS}},
		{Expression: expr, Platforms: []string{PlatformAndroid}, AndroidDir: "x", AndroidMode: "vector"},
		{Expression: expr, Platforms: []string{PlatformIOS}, IOSDir: "x", IOSSize: -3},
	}
	for i, req := range bad {
		if _, err := p.Run(req); err == nil {
			t.Errorf("request %d must be rejected", i)
		}
	}
}

func TestAndroidResourceName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"My Splash", "my_splash"},
		{"screen", "screen"},
		{"42brand", "_42brand"},
		{"", "screen"},
		{"ALL-CAPS.png", "all_caps_png"},
	}
	for _, tt := range tests {
		if got := androidResourceName(tt.in); got != tt.want {
			t.Errorf("androidResourceName(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
