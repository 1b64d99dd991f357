// Package config loads the tool configuration: a small YAML file
// fixing project paths, platform selection and render sizes, so
// build scripts can invoke the generator with no flags.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/splashgen/splashgen/android"
	"github.com/splashgen/splashgen/splash"
)

// DefaultFile is looked up in the working directory when no --config
// flag is given.
const DefaultFile = "splashgen.yaml"

// Config is the whole tool file.
type Config struct {
	// Project is the path to the Cordova config.xml.
	Project string `yaml:"project"`
	// Platforms to generate. Defaults to android and ios.
	Platforms []string `yaml:"platforms"`
	// Label names the artifacts ("screen" when empty).
	Label   string  `yaml:"label"`
	Android Android `yaml:"android"`
	IOS     IOS     `yaml:"ios"`
}

// Android holds the android output settings.
type Android struct {
	Out  string `yaml:"out"`
	Mode string `yaml:"mode"`
	// Master canvas override; zero keeps 1080x1920.
	Width     int       `yaml:"width"`
	Height    int       `yaml:"height"`
	Densities []Density `yaml:"densities"`
}

// Density is one density bucket override.
type Density struct {
	Name  string  `yaml:"name"`
	Scale float64 `yaml:"scale"`
}

// IOS holds the ios output settings.
type IOS struct {
	Out string `yaml:"out"`
	// Size overrides the 1024 square master edge.
	Size int `yaml:"size"`
}

// Default returns the configuration used when no file exists: the
// standard Cordova project layout.
func Default() *Config {
	return &Config{
		Project:   "config.xml",
		Platforms: []string{splash.PlatformAndroid, splash.PlatformIOS},
		Android: Android{
			Out:  "platforms/android/app/src/main/res",
			Mode: string(splash.ModeRaster),
		},
		IOS: IOS{
			Out: "platforms/ios/Assets.xcassets",
		},
	}
}

// Load reads path, layering the file over Default. A missing
// DefaultFile is not an error; a missing explicit path is.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %s", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %s", path, err)
	}
	return cfg, nil
}

// Validate rejects values the pipeline would refuse later, so config
// mistakes surface with the file name attached.
func (c *Config) Validate() error {
	for _, p := range c.Platforms {
		if p != splash.PlatformAndroid && p != splash.PlatformIOS {
			return fmt.Errorf("unknown platform %q", p)
		}
	}
	switch splash.AndroidMode(c.Android.Mode) {
	case "", splash.ModeRaster, splash.ModeShape:
	default:
		return fmt.Errorf("unknown android mode %q", c.Android.Mode)
	}
	if c.Android.Width < 0 || c.Android.Height < 0 || c.IOS.Size < 0 {
		return errors.New("sizes cannot be negative")
	}
	for _, d := range c.Android.Densities {
		if d.Name == "" || d.Scale <= 0 || d.Scale > 1 {
			return fmt.Errorf("invalid density %q (scale %g)", d.Name, d.Scale)
		}
	}
	return nil
}

// Request assembles the pipeline request for one expression and an
// optional platform subset (nil keeps the configured list).
func (c *Config) Request(expression string, platforms []string) splash.Request {
	if platforms == nil {
		platforms = c.Platforms
	}
	req := splash.Request{
		Expression:   expression,
		Platforms:    platforms,
		Label:        c.Label,
		AndroidDir:   c.Android.Out,
		AndroidMode:  splash.AndroidMode(c.Android.Mode),
		MasterWidth:  c.Android.Width,
		MasterHeight: c.Android.Height,
		IOSDir:       c.IOS.Out,
		IOSSize:      c.IOS.Size,
	}
	for _, d := range c.Android.Densities {
		req.Densities = append(req.Densities, android.Density{Name: d.Name, Scale: d.Scale})
	}
	return req
}
