// Orchestrates splash generation: one parsed gradient expression
// fans out to the per-platform writers. Parse failures degrade to a
// solid color derived from the expression and render failures skip
// the platform; a branding hook must never break the build over
// artwork.
package splash

import (
	"errors"
	"fmt"
	"image"

	"github.com/sirupsen/logrus"

	"github.com/splashgen/splashgen/android"
	"github.com/splashgen/splashgen/gradient"
	"github.com/splashgen/splashgen/raster"
)

// Platform identifiers accepted in Request.Platforms.
const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
)

// AndroidMode selects the Android artifact family.
type AndroidMode string

const (
	// ModeRaster renders the gradient into density-bucketed PNGs.
	// This is the faithful representation and the default.
	ModeRaster AndroidMode = "raster"
	// ModeShape writes the two-color shape drawable instead. Interior
	// stops are lost; the mode exists for projects that theme the
	// splash with native resources.
	ModeShape AndroidMode = "shape"
)

// Rasterizer renders an SVG document at a pixel size.
// raster.Engine implements it.
type Rasterizer interface {
	Rasterize(svg []byte, width, height int) (*image.RGBA, error)
}

// Resizer scales a master image into a density bucket.
// raster.Engine implements it.
type Resizer interface {
	Resize(src image.Image, width, height int) *image.RGBA
}

// DefaultFallback is rendered when an unparseable expression names
// no color at all.
var DefaultFallback = gradient.Color{R: 0xFF, G: 0xFF, B: 0xFF}

// Request describes one generation run.
type Request struct {
	// Expression is the raw CSS gradient, usually the SPLASH_GRADIENT
	// preference from config.xml.
	Expression string
	// Platforms to generate, in order.
	Platforms []string
	// Label names the artifacts. It is sanitized into a safe file
	// name; empty means "screen".
	Label string

	AndroidDir  string
	AndroidMode AndroidMode
	// Densities overrides the five default buckets.
	Densities []android.Density
	// Master canvas for the Android raster set. Zero means the
	// 1080x1920 default.
	MasterWidth, MasterHeight int

	IOSDir string
	// IOSSize is the square iOS master edge. Zero means 1024.
	IOSSize int
}

// PlatformError records a platform whose rendering failed and was
// skipped.
type PlatformError struct {
	Platform string
	Err      error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s: %s", e.Platform, e.Err)
}

func (e *PlatformError) Unwrap() error { return e.Err }

// Report summarizes a run.
type Report struct {
	// Artifacts lists every file written, in write order.
	Artifacts []string
	// Failures holds one entry per skipped platform.
	Failures []*PlatformError
	// UsedFallback is set when the expression did not parse and the
	// solid FallbackColor was rendered instead.
	UsedFallback  bool
	FallbackColor gradient.Color
	// Warnings carries parser diagnostics for the caller.
	Warnings []string
}

// Pipeline renders splash artwork. Construct it with New; the zero
// value has no engine.
type Pipeline struct {
	rasterizer Rasterizer
	resizer    Resizer
	log        *logrus.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRasterizer replaces the default oksvg/rasterx engine.
func WithRasterizer(r Rasterizer) Option {
	return func(p *Pipeline) { p.rasterizer = r }
}

// WithResizer replaces the default Catmull-Rom resizer.
func WithResizer(r Resizer) Option {
	return func(p *Pipeline) { p.resizer = r }
}

// WithLogger routes diagnostics somewhere other than the logrus
// standard logger.
func WithLogger(l *logrus.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

// New builds a Pipeline backed by raster.Engine.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		rasterizer: raster.Engine{},
		resizer:    raster.Engine{},
		log:        logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Run generates every requested platform sequentially. The returned
// error is reserved for invalid requests: parse and render problems
// degrade instead (solid fallback, skipped platform) and land in the
// Report.
func (p *Pipeline) Run(req Request) (*Report, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	rep := &Report{}
	g, err := gradient.Parse(req.Expression)
	if err != nil {
		c, ok := gradient.DominantColor(req.Expression)
		if !ok {
			c = DefaultFallback
		}
		rep.UsedFallback = true
		rep.FallbackColor = c
		p.log.WithField("expression", req.Expression).
			Warnf("gradient did not parse (%s), falling back to solid %s", err, c.Hex())
	} else {
		rep.Warnings = g.Warnings
		for _, w := range g.Warnings {
			p.log.Warnf("parse: %s", w)
		}
	}

	for _, plat := range req.Platforms {
		var paths []string
		var rerr error
		switch plat {
		case PlatformAndroid:
			paths, rerr = p.renderAndroid(req, g, rep.FallbackColor)
		case PlatformIOS:
			paths, rerr = p.renderIOS(req, g, rep.FallbackColor)
		}
		if rerr != nil {
			pe := &PlatformError{Platform: plat, Err: rerr}
			rep.Failures = append(rep.Failures, pe)
			p.log.WithField("platform", plat).Warnf("skipped: %s", rerr)
			continue
		}
		rep.Artifacts = append(rep.Artifacts, paths...)
		p.log.WithField("platform", plat).Infof("wrote %d files", len(paths))
	}
	return rep, nil
}

func validate(req Request) error {
	if len(req.Platforms) == 0 {
		return errors.New("no platforms requested")
	}
	for _, plat := range req.Platforms {
		switch plat {
		case PlatformAndroid:
			if req.AndroidDir == "" {
				return errors.New("android requested without an output directory")
			}
		case PlatformIOS:
			if req.IOSDir == "" {
				return errors.New("ios requested without an output directory")
			}
		default:
			return fmt.Errorf("unknown platform %q", plat)
		}
	}
	switch req.AndroidMode {
	case "", ModeRaster, ModeShape:
	default:
		return fmt.Errorf("unknown android mode %q", req.AndroidMode)
	}
	if req.MasterWidth < 0 || req.MasterHeight < 0 || req.IOSSize < 0 {
		return errors.New("master dimensions cannot be negative")
	}
	return nil
}
