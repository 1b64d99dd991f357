package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/splashgen/splashgen/cordova"
	"github.com/splashgen/splashgen/internal/config"
	"github.com/splashgen/splashgen/splash"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the splash assets for every configured platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		return generate(cfg)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

// generate resolves the per-platform expressions and runs the
// pipeline once per distinct expression. It fails only for broken
// invocations: parse and render problems degrade inside the
// pipeline.
func generate(cfg *config.Config) error {
	w, err := cordova.Load(cfg.Project)
	if err != nil {
		return err
	}
	groups, order := expressionGroups(w, cfg.Platforms)
	if len(order) == 0 {
		logrus.Infof("%s declares no %s preference, nothing to do", cfg.Project, cordova.GradientPreference)
		return nil
	}

	p := splash.New()
	skipped := 0
	for _, expression := range order {
		rep, err := p.Run(cfg.Request(expression, groups[expression]))
		if err != nil {
			return err
		}
		report(rep)
		skipped += len(rep.Failures)
	}
	if skipped > 0 {
		logrus.Warnf("%d platform(s) skipped", skipped)
	}
	return nil
}

// expressionGroups buckets the requested platforms by their resolved
// gradient expression, honoring per-platform overrides, keeping the
// encounter order stable. Platforms without any expression are left
// out: an absent preference means no splash generation.
func expressionGroups(w *cordova.Widget, platforms []string) (map[string][]string, []string) {
	groups := make(map[string][]string)
	var order []string
	for _, plat := range platforms {
		expression, ok := w.PreferenceFor(plat, cordova.GradientPreference)
		if !ok {
			logrus.Debugf("%s: no %s preference", plat, cordova.GradientPreference)
			continue
		}
		if _, seen := groups[expression]; !seen {
			order = append(order, expression)
		}
		groups[expression] = append(groups[expression], plat)
	}
	return groups, order
}

func report(rep *splash.Report) {
	for _, a := range rep.Artifacts {
		logrus.Infof("wrote %s", a)
	}
	if rep.UsedFallback {
		logrus.Warnf("rendered solid fallback %s", rep.FallbackColor.Hex())
	}
	for _, f := range rep.Failures {
		logrus.Warnf("skipped %s: %s", f.Platform, f.Err)
	}
}
