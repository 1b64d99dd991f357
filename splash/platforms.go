package splash

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/flytam/filenamify"

	"github.com/splashgen/splashgen/android"
	"github.com/splashgen/splashgen/gradient"
	"github.com/splashgen/splashgen/ios"
	"github.com/splashgen/splashgen/raster"
	"github.com/splashgen/splashgen/svgsynth"
)

func (p *Pipeline) renderAndroid(req Request, g *gradient.Gradient, fallback gradient.Color) ([]string, error) {
	base := androidResourceName(req.label())
	if req.AndroidMode == ModeShape {
		return p.writeShape(req.AndroidDir, base, g, fallback)
	}

	w, h := req.MasterWidth, req.MasterHeight
	if w == 0 {
		w = android.MasterWidth
	}
	if h == 0 {
		h = android.MasterHeight
	}
	master, err := p.rasterizer.Rasterize(p.document(g, fallback, w, h), w, h)
	if err != nil {
		return nil, err
	}
	return android.WriteSplashSet(req.AndroidDir, base, master, req.Densities, p.resizer)
}

func (p *Pipeline) writeShape(dir, base string, g *gradient.Gradient, fallback gradient.Color) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, base+".xml")
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if g != nil {
		var d android.ShapeDescriptor
		if d, err = android.NewShapeDescriptor(g); err == nil {
			err = android.WriteShapeDrawable(f, d)
		}
	} else {
		err = android.WriteSolidDrawable(f, fallback)
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return []string{path}, nil
}

func (p *Pipeline) renderIOS(req Request, g *gradient.Gradient, fallback gradient.Color) ([]string, error) {
	size := req.IOSSize
	if size == 0 {
		size = ios.MasterSize
	}
	master, err := p.rasterizer.Rasterize(p.document(g, fallback, size, size), size, size)
	if err != nil {
		return nil, err
	}
	data, err := raster.EncodePNG(master)
	if err != nil {
		return nil, err
	}
	return ios.WriteImageset(req.IOSDir, req.label(), data)
}

// document synthesizes the run's SVG: the parsed gradient, or the
// solid fallback when parsing failed.
func (p *Pipeline) document(g *gradient.Gradient, fallback gradient.Color, w, h int) []byte {
	if g == nil {
		return svgsynth.Solid(fallback, w, h)
	}
	return svgsynth.Render(g, w, h)
}

// label sanitizes the request label into a usable file name.
func (r Request) label() string {
	if r.Label == "" {
		return "screen"
	}
	name, err := filenamify.FilenamifyV2(r.Label)
	if err != nil || name == "" {
		return "screen"
	}
	return name
}

// androidResourceName forces the charset Android resources allow:
// lowercase latin letters, digits and underscores, not starting with
// a digit.
func androidResourceName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out == "" {
		return "screen"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}
