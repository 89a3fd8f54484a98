// Package config loads the server configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration parses YAML values like "1h30m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`
	// ValkeyAddr enables the shared render cache; empty means in-process
	// caching.
	ValkeyAddr string `yaml:"valkeyAddr"`
	// DataDir holds the tenant database; empty means in-memory tenants.
	DataDir string `yaml:"dataDir"`
	// MediaBaseURL is where uploaded assets are served from.
	MediaBaseURL string `yaml:"mediaBaseUrl"`
	// CacheTTL bounds how long a rendered page may be served.
	CacheTTL Duration `yaml:"cacheTTL"`
	// Seed loads the demo tenants when the store is empty.
	Seed bool `yaml:"seed"`
}

func Default() Config {
	return Config{
		Addr:         ":8080",
		MediaBaseURL: "/media",
		CacheTTL:     Duration(24 * time.Hour),
	}
}

// Load reads a YAML config file, filling unset fields with defaults. An
// empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.MediaBaseURL == "" {
		cfg.MediaBaseURL = "/media"
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = Duration(24 * time.Hour)
	}
	return cfg, nil
}
