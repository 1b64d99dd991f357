// Reads the Cordova project descriptor. Only the subset of
// config.xml that feeds splash generation is modeled: widget
// identity, the app name, preferences, and per-platform preference
// overrides.
package cordova

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

// GradientPreference is the preference carrying the CSS gradient
// expression. When a project declares no such preference, splash
// generation is disabled rather than defaulted.
const GradientPreference = "SPLASH_GRADIENT"

// Preference is one <preference name value> entry.
type Preference struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// Platform is a <platform> block with its scoped preferences.
type Platform struct {
	Name        string       `xml:"name,attr"`
	Preferences []Preference `xml:"preference"`
}

// Widget models the root element of a config.xml.
type Widget struct {
	XMLName     xml.Name     `xml:"widget"`
	ID          string       `xml:"id,attr"`
	Version     string       `xml:"version,attr"`
	Name        string       `xml:"name"`
	Preferences []Preference `xml:"preference"`
	Platforms   []Platform   `xml:"platform"`
}

// Load reads and parses the config.xml at path.
func Load(path string) (*Widget, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	w, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %s", path, err)
	}
	return w, nil
}

// Read parses a config.xml document. The decoder honors the declared
// document charset; these files are not always UTF-8.
func Read(r io.Reader) (*Widget, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	var w Widget
	if err := decoder.Decode(&w); err != nil {
		return nil, err
	}
	return &w, nil
}

// Preference finds a global preference. Names compare
// case-insensitively, the way Cordova resolves them.
func (w *Widget) Preference(name string) (string, bool) {
	return lookup(w.Preferences, name)
}

// PreferenceFor resolves a preference for one platform. A
// platform-scoped entry wins over the global one.
func (w *Widget) PreferenceFor(platform, name string) (string, bool) {
	for _, p := range w.Platforms {
		if strings.EqualFold(p.Name, platform) {
			if v, ok := lookup(p.Preferences, name); ok {
				return v, true
			}
		}
	}
	return lookup(w.Preferences, name)
}

// PlatformNames lists the declared platforms in document order.
func (w *Widget) PlatformNames() []string {
	names := make([]string, len(w.Platforms))
	for i, p := range w.Platforms {
		names[i] = p.Name
	}
	return names
}

func lookup(prefs []Preference, name string) (string, bool) {
	for _, p := range prefs {
		if strings.EqualFold(p.Name, name) {
			return p.Value, true
		}
	}
	return "", false
}
