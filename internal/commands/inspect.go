package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/splashgen/splashgen/android"
	"github.com/splashgen/splashgen/cordova"
	"github.com/splashgen/splashgen/gradient"
	"github.com/splashgen/splashgen/internal/config"
	"github.com/splashgen/splashgen/splash"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [expression]",
	Short: "Explain how a gradient expression will render",
	Long: `inspect parses the given expression (or the SPLASH_GRADIENT
preference of the configured project) and prints its kind, angles
and stops, with the solid color a fallback would use.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return inspect(args[0])
		}
		cfg, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		w, err := cordova.Load(cfg.Project)
		if err != nil {
			return err
		}
		v, ok := w.Preference(cordova.GradientPreference)
		if !ok {
			return fmt.Errorf("%s declares no %s preference", cfg.Project, cordova.GradientPreference)
		}
		return inspect(v)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func inspect(expression string) error {
	g, err := gradient.Parse(expression)
	if err != nil {
		color.Red("unparseable: %s", err)
		c, ok := gradient.DominantColor(expression)
		if !ok {
			c = splash.DefaultFallback
		}
		fmt.Printf("fallback: %s %s\n", swatch(c), c.Hex())
		return nil
	}

	fmt.Printf("kind:  %s\n", g.Kind)
	if g.Kind == gradient.Linear {
		fmt.Printf("angle: %gdeg css -> %d android\n", g.Angle, android.CompassAngle(g.Angle))
	}
	fmt.Printf("stops: %d\n", len(g.Stops))
	for _, s := range g.Stops {
		fmt.Printf("  %s %s %5.1f%%\n", swatch(s.Color), s.Color.Hex(), s.Position*100)
	}
	for _, w := range g.Warnings {
		color.Yellow("warning: %s", w)
	}
	return nil
}

// swatch renders two terminal cells in the given color.
func swatch(c gradient.Color) string {
	return color.BgRGB(int(c.R), int(c.G), int(c.B)).Sprint("  ")
}
