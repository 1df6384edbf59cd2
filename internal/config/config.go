// Package config loads CLI display defaults from an optional YAML file.
// Only presentation knobs live here; the statistical constants (bin count,
// top-N, thresholds) are fixed so repeated runs stay comparable.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Settings are the user-tunable CLI defaults.
type Settings struct {
	HistogramWidth int `mapstructure:"histogram_width" yaml:"histogram_width"`
	Workers        int `mapstructure:"workers" yaml:"workers"`
}

// Default returns the built-in settings used when no config file exists.
func Default() Settings {
	return Settings{
		HistogramWidth: 40,
		Workers:        0, // 0 = auto-detect CPU count
	}
}

// Load reads settings from cfgFile, or from ~/.dataprof.yaml when cfgFile
// is empty. A missing file is not an error; defaults are returned.
func Load(cfgFile string) (Settings, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil
		}
		v.SetConfigFile(filepath.Join(home, ".dataprof.yaml"))
	}
	v.SetConfigType("yaml")

	defaults := Default()
	v.SetDefault("histogram_width", defaults.HistogramWidth)
	v.SetDefault("workers", defaults.Workers)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok || os.IsNotExist(err) {
			return defaults, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaults, nil
		}
		return defaults, fmt.Errorf("failed to read config: %w", err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return defaults, fmt.Errorf("failed to parse config: %w", err)
	}
	return s, nil
}

// Save writes the settings to cfgFile, or to ~/.dataprof.yaml when cfgFile
// is empty.
func Save(s Settings, cfgFile string) error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".dataprof.yaml")
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
