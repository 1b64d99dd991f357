package android

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
)

// Master splash canvas, portrait. Density scales apply to both axes,
// so every bucket keeps the 9:16 aspect.
const (
	MasterWidth  = 1080
	MasterHeight = 1920
)

// Resizer scales a rendered master down to a density bucket.
// raster.Engine implements it.
type Resizer interface {
	Resize(src image.Image, width, height int) *image.RGBA
}

// Density is one Android density bucket, scaled relative to the
// xxxhdpi master.
type Density struct {
	Name  string
	Scale float64
}

// DefaultDensities covers the five classic buckets.
var DefaultDensities = []Density{
	{"mdpi", 0.25},
	{"hdpi", 0.375},
	{"xhdpi", 0.5},
	{"xxhdpi", 0.75},
	{"xxxhdpi", 1.0},
}

// WriteSplashSet resizes master into every density bucket and writes
// <dir>/drawable-<density>/<base>.png per bucket. It returns the
// paths written; on error the returned slice still names the files
// completed before the failure.
func WriteSplashSet(dir, base string, master image.Image, densities []Density, rz Resizer) ([]string, error) {
	if len(densities) == 0 {
		densities = DefaultDensities
	}
	mb := master.Bounds()
	var paths []string
	for _, d := range densities {
		w := int(math.Round(float64(mb.Dx()) * d.Scale))
		h := int(math.Round(float64(mb.Dy()) * d.Scale))
		if w < 1 || h < 1 {
			return paths, fmt.Errorf("density %s: scale %g collapses the %dx%d master", d.Name, d.Scale, mb.Dx(), mb.Dy())
		}
		outDir := filepath.Join(dir, "drawable-"+d.Name)
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return paths, err
		}
		path := filepath.Join(outDir, base+".png")
		if err := writePNG(path, rz.Resize(master, w, h)); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %s", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %s", path, err)
	}
	return f.Close()
}
