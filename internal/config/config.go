package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
)

type Config struct {
	Hotkeys        []Hotkey `json:"hotkeys"`
	Global         bool     `json:"global"`          // false = emulated-local dispatch
	SuppressErrors bool     `json:"suppress_errors"` // silent no-ops instead of hard failures
	LogLevel       string   `json:"log_level"`
}

// Hotkey is one configured binding. ID 0 means auto-assign.
type Hotkey struct {
	Spec string `json:"spec"`
	ID   int16  `json:"id,omitempty"`
}

// Load reads the config from disk or returns defaults
func Load() (*Config, error) {
	path := configPath()

	// Default config
	cfg := &Config{
		Hotkeys: []Hotkey{
			{Spec: "{CTRL}{SHIFT}F9"},
		},
		Global:         true,
		SuppressErrors: false,
		LogLevel:       "info",
	}

	// Load existing config if it exists
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	path := configPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// configPath returns the platform-specific config file path
func configPath() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		base = os.Getenv("HOME") + "/Library/Application Support"
	case "windows":
		base = os.Getenv("APPDATA")
	default: // linux
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = xdg
		} else {
			base = os.Getenv("HOME") + "/.config"
		}
	}

	return filepath.Join(base, "hotkey-tray", "config.json")
}
