package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Source string      `yaml:"source"`
	Web    WebConfig   `yaml:"web"`
	Watch  WatchConfig `yaml:"watch"`
}

// WebConfig configures the web icon suite output
type WebConfig struct {
	OutputDir string      `yaml:"output_dir"`
	Icons     IconsConfig `yaml:"icons"`
}

// IconsConfig lists the pixel sizes generated per icon family
type IconsConfig struct {
	FaviconSizes        []int `yaml:"favicon_sizes"`
	AppleTouchIconSizes []int `yaml:"apple_touch_icon_sizes"`
	AndroidIconSizes    []int `yaml:"android_icon_sizes"`
}

// WatchConfig configures the watch-mode binary
type WatchConfig struct {
	DebounceMS int `yaml:"debounce_ms"`
}

// Default returns the configuration used when no config file is given
func Default() *Config {
	return &Config{
		Source: "app/src/main/res/Icon.png",
		Web: WebConfig{
			OutputDir: "app/src/main/web",
			Icons: IconsConfig{
				FaviconSizes:        []int{16, 32, 48},
				AppleTouchIconSizes: []int{180, 152, 120, 76},
				AndroidIconSizes:    []int{192, 512},
			},
		},
		Watch: WatchConfig{
			DebounceMS: 500,
		},
	}
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration fields are set
func (c *Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source is required")
	}
	if c.Web.OutputDir == "" {
		return fmt.Errorf("web.output_dir is required")
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative")
	}
	return nil
}
