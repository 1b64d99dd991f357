package commands

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/splashgen/splashgen/internal/config"
)

// watchDebounce coalesces the event bursts editors produce on save.
const watchDebounce = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever config.xml changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		return watch(cfg)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func watch(cfg *config.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files
	// through atomic renames.
	if err := watcher.Add(filepath.Dir(cfg.Project)); err != nil {
		return err
	}

	if err := generate(cfg); err != nil {
		logrus.Warnf("initial generate failed: %s", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	logrus.Infof("watching %s", cfg.Project)

	base := filepath.Base(cfg.Project)
	var timer *time.Timer
	var pending <-chan time.Time
	for {
		select {
		case <-stop:
			logrus.Info("stopping")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(watchDebounce)
			pending = timer.C

		case <-pending:
			timer, pending = nil, nil
			if err := generate(cfg); err != nil {
				logrus.Warnf("generate failed: %s", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logrus.Warnf("watch error: %s", err)
		}
	}
}
