package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/danmuck/discordrp"
	"github.com/danmuck/discordrp/internal/logging"
)

const watchDebounce = 200 * time.Millisecond

func main() {
	var (
		configPath   string
		activityPath string
		watch        bool
		clearOnly    bool
	)
	flag.StringVar(&configPath, "config", "presencectl.toml", "path to TOML config")
	flag.StringVar(&activityPath, "activity", "", "activity JSON file (overrides config)")
	flag.BoolVar(&watch, "watch", false, "re-apply the activity file on change")
	flag.BoolVar(&clearOnly, "clear", false, "clear the current activity and exit")
	flag.Parse()

	cfg, err := loadRuntimeConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if activityPath != "" {
		cfg.ActivityPath = activityPath
	}
	if watch {
		cfg.Watch = true
	}

	logger := logging.New("presencectl", cfg.Log)
	if err := run(cfg, clearOnly, logger); err != nil {
		logger.Error().Err(err).Msg("presencectl failed")
		os.Exit(1)
	}
}

func run(cfg runtimeConfig, clearOnly bool, logger zerolog.Logger) error {
	presence, err := discordrp.Connect(cfg.ClientID, discordrp.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer presence.Close()

	if clearOnly {
		if err := presence.Clear(); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
		logger.Info().Msg("activity cleared")
		return nil
	}

	if cfg.ActivityPath == "" {
		return fmt.Errorf("no activity file configured (set activity_path or -activity)")
	}
	if err := applyActivity(presence, cfg.ActivityPath, logger); err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	if cfg.Watch {
		if err := watchActivity(presence, cfg.ActivityPath, sig, logger); err != nil {
			return err
		}
	} else {
		<-sig
	}

	if cfg.ClearOnExit {
		if err := presence.Clear(); err != nil {
			logger.Warn().Err(err).Msg("clear on exit failed")
		}
	}
	return nil
}

func applyActivity(presence *discordrp.Presence, path string, logger zerolog.Logger) error {
	activity, err := loadActivity(path)
	if err != nil {
		return err
	}
	if err := presence.Set(activity); err != nil {
		return fmt.Errorf("set activity: %w", err)
	}
	logger.Info().Str("path", path).Msg("activity applied")
	return nil
}

// watchActivity re-applies the activity file whenever it changes, until a
// shutdown signal arrives. Events are debounced: editors commonly emit a
// burst of writes per save.
func watchActivity(presence *discordrp.Presence, path string, sig <-chan os.Signal, logger zerolog.Logger) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch activity: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch activity: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: saves that replace the file would drop a
	// watch on the file itself.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch activity: %w", err)
	}

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case ev := <-watcher.Events:
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Base(ev.Name) != filepath.Base(abs) {
				continue
			}
			debounce.Reset(watchDebounce)
		case <-debounce.C:
			if err := applyActivity(presence, abs, logger); err != nil {
				// A bad edit should not kill the session; the next
				// save gets another chance.
				logger.Warn().Err(err).Msg("activity not applied")
			}
		case err := <-watcher.Errors:
			logger.Warn().Err(err).Msg("watch error")
		case <-sig:
			return nil
		}
	}
}
