// Package commands wires the CLI: generate renders the splash
// assets, inspect explains an expression, watch regenerates on
// config.xml changes.
package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.3.0"

var (
	configFlag  string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "splashgen",
	Short: "Generate native splash assets from a CSS gradient",
	Long: `splashgen reads the SPLASH_GRADIENT preference of a Cordova
config.xml and renders it into Android density PNGs (or a shape
drawable) and an iOS launch imageset. Unparseable gradients degrade
to a solid color instead of breaking the build.`,
	Version:      Version,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to the splashgen.yaml tool config")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "debug logging")
}
