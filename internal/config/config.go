// Package config provides configuration management for plugindex.
// It supports a YAML configuration file, environment variables, and
// sensible defaults.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/klauern/plugindex/internal/util"
)

// Config represents the complete plugindex configuration.
type Config struct {
	// Registry configures where and how the plugins tree is scanned
	Registry RegistryConfig `yaml:"registry"`

	// Output configures display preferences
	Output OutputConfig `yaml:"output"`
}

// RegistryConfig holds scan settings.
type RegistryConfig struct {
	// Root is the plugins directory to index. A leading ~ expands to the
	// home directory; relative paths resolve from the working directory.
	Root string `yaml:"root"`
	// Ignore lists glob patterns (relative to the root) skipped during scans
	Ignore []string `yaml:"ignore,omitempty"`
}

// OutputConfig holds display preferences.
type OutputConfig struct {
	// Format is the default output format (table, json)
	Format string `yaml:"format"`
	// Color controls color output (auto, always, never)
	Color string `yaml:"color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Registry: RegistryConfig{
			Root: util.DefaultPluginsRoot(),
		},
		Output: OutputConfig{
			Format: "table",
			Color:  "auto",
		},
	}
}

// configFileName is the name of the config file.
const configFileName = "config.yaml"

// FilePath returns the path to the config file.
func FilePath() string {
	return filepath.Join(util.ConfigDir(), configFileName)
}

// Load loads the configuration from file, merging with defaults.
// If the config file doesn't exist, returns default configuration.
func Load() (*Config, error) {
	cfg := Default()

	configPath := FilePath()
	// #nosec G304 - configPath is constructed from trusted config directory
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvironment()
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyEnvironment()
	return cfg, nil
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	// #nosec G304 - path is provided by caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyEnvironment()
	return cfg, nil
}

// SaveToPath writes the configuration to a specific path.
func (c *Config) SaveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// #nosec G306 - config file should be readable by user
	return os.WriteFile(path, data, 0o644)
}

// applyEnvironment applies environment variable overrides.
// Recognized variables: PLUGINDEX_ROOT, PLUGINDEX_FORMAT, PLUGINDEX_COLOR.
func (c *Config) applyEnvironment() {
	if root := os.Getenv("PLUGINDEX_ROOT"); root != "" {
		c.Registry.Root = root
	}
	if format := os.Getenv("PLUGINDEX_FORMAT"); format != "" {
		c.Output.Format = format
	}
	if color := os.Getenv("PLUGINDEX_COLOR"); color != "" {
		c.Output.Color = color
	}
}

// ResolvedRoot returns the registry root with ~ expanded.
func (c *Config) ResolvedRoot() string {
	return util.ExpandHome(c.Registry.Root)
}
