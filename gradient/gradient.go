// Provides parsing of CSS gradient expressions into a typed
// representation, which can then be consumed by rendering backends.
// Only the subset of CSS produced by app branding front-ends is
// recognized: linear-gradient and radial-gradient with hex color stops.
package gradient

import "fmt"

// Kind selects the gradient geometry
type Kind byte

// Supported gradient kinds
const (
	Linear Kind = iota
	Radial
)

func (k Kind) String() string {
	if k == Radial {
		return "radial"
	}
	return "linear"
}

// DefaultAngle is applied to linear gradients that carry no angle
// argument. It matches the CSS "to bottom" direction.
const DefaultAngle = 180.0

// Color is an opaque sRGB color
type Color struct {
	R, G, B uint8
}

// Hex formats c as #RRGGBB
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex reads a #RRGGBB or #RRGGBBAA color. A trailing alpha
// channel is discarded, since splash artwork is always opaque.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 && len(s) != 9 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	var c Color
	if _, err := fmt.Sscanf(s[:7], "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %s", s, err)
	}
	return c, nil
}

// Stop is one color stop. Position is the fractional offset along
// the gradient segment (30% parses to 0.3).
type Stop struct {
	Color    Color
	Position float64
}

// Gradient is the parsed form of a CSS gradient expression.
// Stops keep the textual order of the input; they are never
// sorted or de-duplicated.
type Gradient struct {
	Kind  Kind
	Angle float64 // CSS convention, in degrees; meaningful for Linear only
	Stops []Stop

	// Warnings collects non-fatal diagnostics emitted while
	// parsing, such as a discarded alpha channel. The parser
	// itself never logs.
	Warnings []string
}
