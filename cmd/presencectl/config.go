package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tailscale/hujson"

	"github.com/danmuck/discordrp/internal/logging"
)

// presencectl config.toml key mapping to runtime settings.
type fileConfig struct {
	ClientID      string `toml:"client_id"`
	ActivityPath  string `toml:"activity_path"`
	Watch         bool   `toml:"watch"`
	ClearOnExit   bool   `toml:"clear_on_exit"`
	LogLevel      string `toml:"log_level"`
	LogFile       string `toml:"log_file"`
	LogMaxSizeMB  int    `toml:"log_max_size_mb"`
	LogMaxBackups int    `toml:"log_max_backups"`
	LogMaxAgeDays int    `toml:"log_max_age_days"`
}

type runtimeConfig struct {
	ClientID     string
	ActivityPath string
	Watch        bool
	ClearOnExit  bool
	Log          logging.Config
}

func defaultRuntimeConfig() runtimeConfig {
	return runtimeConfig{
		ClearOnExit: true,
		Log:         logging.DefaultConfig(),
	}
}

// presencectl loader for TOML config with default overlay.
func loadRuntimeConfig(path string) (runtimeConfig, error) {
	cfg := defaultRuntimeConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return runtimeConfig{}, fmt.Errorf("load presencectl config: %w", err)
	}

	if meta.IsDefined("client_id") {
		cfg.ClientID = strings.TrimSpace(raw.ClientID)
	}
	if meta.IsDefined("activity_path") {
		cfg.ActivityPath = strings.TrimSpace(raw.ActivityPath)
	}
	if meta.IsDefined("watch") {
		cfg.Watch = raw.Watch
	}
	if meta.IsDefined("clear_on_exit") {
		cfg.ClearOnExit = raw.ClearOnExit
	}
	if meta.IsDefined("log_level") {
		lvl, ok := logging.ParseLevel(raw.LogLevel)
		if !ok {
			return runtimeConfig{}, fmt.Errorf(
				"load presencectl config: unknown log_level %q", raw.LogLevel,
			)
		}
		cfg.Log.Level = lvl
	}
	if meta.IsDefined("log_file") {
		cfg.Log.File = strings.TrimSpace(raw.LogFile)
	}
	if meta.IsDefined("log_max_size_mb") {
		cfg.Log.MaxSizeMB = raw.LogMaxSizeMB
	}
	if meta.IsDefined("log_max_backups") {
		cfg.Log.MaxBackups = raw.LogMaxBackups
	}
	if meta.IsDefined("log_max_age_days") {
		cfg.Log.MaxAgeDays = raw.LogMaxAgeDays
	}

	if cfg.ClientID == "" {
		return runtimeConfig{}, fmt.Errorf("load presencectl config: client_id is required")
	}

	return cfg, nil
}

// loadActivity reads an activity payload from a JSON file. Comments and
// trailing commas are permitted and standardized away before decoding.
func loadActivity(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load activity %q: %w", path, err)
	}
	std, err := hujson.Standardize(raw)
	if err != nil {
		return nil, fmt.Errorf("load activity %q: %w", path, err)
	}
	var activity any
	if err := json.Unmarshal(std, &activity); err != nil {
		return nil, fmt.Errorf("load activity %q: %w", path, err)
	}
	return activity, nil
}
