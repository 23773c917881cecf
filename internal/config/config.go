// Package config loads the process configuration from a YAML file and
// applies defaults, so all wiring (store backend, addresses, catalog,
// contact card) is explicit instead of hardcoded.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Duration is a time.Duration that unmarshals from YAML strings like "24h".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config is the full process configuration.
type Config struct {
	ListenAddr  string         `yaml:"listen_addr"`
	LogLevel    string         `yaml:"log_level"`
	CatalogFile string         `yaml:"catalog_file"`
	Store       StoreConfig    `yaml:"store"`
	Contacts    ContactsConfig `yaml:"contacts"`
}

// StoreConfig selects and configures the session store backend.
type StoreConfig struct {
	Backend string      `yaml:"backend"`
	Path    string      `yaml:"path"`
	Redis   RedisConfig `yaml:"redis"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string   `yaml:"addr"`
	Password string   `yaml:"password"`
	DB       int      `yaml:"db"`
	Prefix   string   `yaml:"prefix"`
	TTL      Duration `yaml:"ttl"`
	// Lock enables the distributed per-user lock, for running more than
	// one replica against the same redis.
	Lock bool `yaml:"lock"`
}

// ContactsConfig is the restaurant's contact card shown by the contacts
// action. Empty fields fall back to the built-in card.
type ContactsConfig struct {
	Manager string `yaml:"manager"`
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
	Hours   string `yaml:"hours"`
	Address string `yaml:"address"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		ListenAddr: ":8080",
		LogLevel:   "info",
		Store: StoreConfig{
			Backend: BackendFile,
			Path:    "restaurant_data.json",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "restobot:session:",
			},
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendFile, BackendRedis:
	default:
		return fmt.Errorf("unknown store backend %q (want %s, %s or %s)",
			c.Store.Backend, BackendMemory, BackendFile, BackendRedis)
	}
	if c.Store.Backend == BackendRedis && c.Store.Redis.Addr == "" {
		return fmt.Errorf("store backend %q requires redis.addr", BackendRedis)
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr cannot be empty")
	}
	return nil
}
