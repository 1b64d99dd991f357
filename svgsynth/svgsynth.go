// Synthesizes SVG splash documents from parsed gradients.
// The gradient segment is anchored at the canvas center and spans
// the full diagonal, so the color run covers every corner at any
// angle. Documents are deterministic: equal inputs give identical
// bytes, which keeps repeated builds from dirtying native projects.
package svgsynth

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/ajstarks/svgo"

	"github.com/splashgen/splashgen/gradient"
)

// id of the single gradient definition in every document.
const gradientID = "splash"

// Render dispatches on the gradient kind.
func Render(g *gradient.Gradient, width, height int) []byte {
	if g.Kind == gradient.Radial {
		return Radial(g, width, height)
	}
	return Linear(g, width, height)
}

// Linear renders g as a width x height document with one full-canvas
// rect filled by a userSpaceOnUse linear gradient along the CSS
// angle.
func Linear(g *gradient.Gradient, width, height int) []byte {
	x1, y1, x2, y2 := SegmentEndpoints(g.Angle, width, height)
	var buf bytes.Buffer
	doc := svg.New(&buf)
	doc.Start(width, height)
	doc.Def()
	fmt.Fprintf(doc.Writer,
		`<linearGradient id=%q gradientUnits="userSpaceOnUse" x1=%q y1=%q x2=%q y2=%q>`+"\n",
		gradientID, fm(x1), fm(y1), fm(x2), fm(y2))
	writeStops(doc, g.Stops)
	fmt.Fprintln(doc.Writer, "</linearGradient>")
	doc.DefEnd()
	doc.Rect(0, 0, width, height, "fill:url(#"+gradientID+")")
	doc.End()
	return buf.Bytes()
}

// Radial renders g with a center-anchored radial gradient whose
// radius is half the canvas diagonal, reaching the corners exactly.
// The angle of g is ignored, matching the CSS semantics.
func Radial(g *gradient.Gradient, width, height int) []byte {
	cx, cy := float64(width)/2, float64(height)/2
	r := math.Hypot(float64(width), float64(height)) / 2
	var buf bytes.Buffer
	doc := svg.New(&buf)
	doc.Start(width, height)
	doc.Def()
	fmt.Fprintf(doc.Writer,
		`<radialGradient id=%q gradientUnits="userSpaceOnUse" cx=%q cy=%q r=%q>`+"\n",
		gradientID, fm(cx), fm(cy), fm(r))
	writeStops(doc, g.Stops)
	fmt.Fprintln(doc.Writer, "</radialGradient>")
	doc.DefEnd()
	doc.Rect(0, 0, width, height, "fill:url(#"+gradientID+")")
	doc.End()
	return buf.Bytes()
}

// Solid renders a single-color canvas. The parse fallback routes
// through here so degraded output shares the rendering path of real
// gradients.
func Solid(c gradient.Color, width, height int) []byte {
	var buf bytes.Buffer
	doc := svg.New(&buf)
	doc.Start(width, height)
	doc.Rect(0, 0, width, height, "fill:"+c.Hex())
	doc.End()
	return buf.Bytes()
}

// SegmentEndpoints places the gradient segment for a CSS angle on a
// width x height canvas. The segment passes through the canvas
// center with direction (sin a, -cos a) in top-left y-down
// coordinates, half the diagonal before the center and half after.
func SegmentEndpoints(cssDeg float64, width, height int) (x1, y1, x2, y2 float64) {
	cx, cy := float64(width)/2, float64(height)/2
	rad := cssDeg * math.Pi / 180
	dx, dy := math.Sin(rad), -math.Cos(rad)
	half := math.Hypot(float64(width), float64(height)) / 2
	return cx - dx*half, cy - dy*half, cx + dx*half, cy + dy*half
}

// writeStops emits the stop list in input order. Stops are always
// fully opaque: splash screens sit below nothing they could blend
// with.
func writeStops(doc *svg.SVG, stops []gradient.Stop) {
	for _, s := range stops {
		fmt.Fprintf(doc.Writer, `<stop offset="%s%%" stop-color=%q stop-opacity="1"/>`+"\n",
			fm(s.Position*100), s.Color.Hex())
	}
}

// fm formats a coordinate with fixed, locale-free precision so that
// document bytes never drift between runs or hosts.
func fm(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
