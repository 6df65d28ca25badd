// Package config resolves a wordrules-infer run configuration from
// (in priority order) CLI flags, an optional YAML config file, and
// XDG-style default locations.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the fully resolved run configuration.
type Config struct {
	// CorpusRoot is the directory corpus files are discovered under.
	CorpusRoot string `yaml:"corpusRoot"`
	// Include is a set of doublestar glob patterns, relative to
	// CorpusRoot, selecting corpus files.
	Include []string `yaml:"include"`
	// Exclude is a set of doublestar glob patterns excluded from
	// Include's matches.
	Exclude []string `yaml:"exclude"`
	// ManifestPath, if set, points at a corpus manifest sidecar file
	// validated against the embedded manifest schema.
	ManifestPath string `yaml:"manifestPath"`
	// OutputPath is where the run report is written; empty means
	// stdout.
	OutputPath string `yaml:"outputPath"`
	// OutputFormat is "text", "yaml" or "json". Defaults to "text".
	OutputFormat string `yaml:"outputFormat"`
	// LogLevel is passed through to logging.Config.Level.
	LogLevel string `yaml:"logLevel"`
}

// defaults returns the built-in fallback configuration.
func defaults() Config {
	return Config{
		Include:      []string{"**/*.csv", "**/*.txt"},
		OutputFormat: "text",
		LogLevel:     "info",
	}
}

// Load resolves a Config by layering, lowest priority first: built-in
// defaults, the YAML file at configPath (if non-empty and present),
// then overrides (non-zero fields win). Missing configPath is not an
// error; a malformed one is.
func Load(configPath string, overrides Config) (Config, error) {
	cfg := defaults()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, err
			}
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(data, &fileCfg); err != nil {
				return Config{}, err
			}
			cfg = mergeConfig(cfg, fileCfg)
		}
	}

	cfg = mergeConfig(cfg, overrides)
	return cfg, nil
}

// mergeConfig overlays onto base: any non-zero-value field of overlay
// replaces the corresponding field of base.
func mergeConfig(base, overlay Config) Config {
	if overlay.CorpusRoot != "" {
		base.CorpusRoot = overlay.CorpusRoot
	}
	if len(overlay.Include) > 0 {
		base.Include = overlay.Include
	}
	if len(overlay.Exclude) > 0 {
		base.Exclude = overlay.Exclude
	}
	if overlay.ManifestPath != "" {
		base.ManifestPath = overlay.ManifestPath
	}
	if overlay.OutputPath != "" {
		base.OutputPath = overlay.OutputPath
	}
	if overlay.OutputFormat != "" {
		base.OutputFormat = overlay.OutputFormat
	}
	if overlay.LogLevel != "" {
		base.LogLevel = overlay.LogLevel
	}
	return base
}

// XDGConfigPath returns the default config file location for
// wordrules-infer: $XDG_CONFIG_HOME/wordrules/config.yaml, falling
// back to ~/.config/wordrules/config.yaml.
func XDGConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home := os.Getenv("HOME")
		if home == "" {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "wordrules", "config.yaml")
}
