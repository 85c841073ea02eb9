// Package config loads service configuration from defaults, an optional
// YAML file, and environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config wraps a koanf instance behind the accessors the rest of the
// service uses.
type Config struct {
	k *koanf.Koanf
}

// Defaults applied before file and environment loading.
var defaults = map[string]interface{}{
	"web.addr":          ":8080",
	"log.level":         "info",
	"db.mongo.url":      "mongodb://localhost:27017",
	"db.mongo.name":     "shoestack",
	"nats.url":          "",
	"redis.url":         "",
	"telemetry.enabled": false,
	"queries.cache.ttl": "30s",
	"reports.low_stock": 5,
	"console.base_url":  "http://localhost:8080",
	"shutdown.timeout":  "15s",
}

// Load builds a Config for the given env namespace (e.g. "SHOESTACK").
// A YAML file may be supplied via the <NAMESPACE>_CONFIG variable or a
// leading "--config path" argument; a missing file is fatal only when
// explicitly requested.
func Load(namespace string, args []string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("cannot load defaults: %w", err)
	}

	path := os.Getenv(namespace + "_CONFIG")
	for i := 0; i < len(args)-1; i++ {
		if args[i] == "--config" {
			path = args[i+1]
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("cannot load config file %s: %w", path, err)
		}
	}

	prefix := namespace + "_"
	err := k.Load(env.Provider(prefix, ".", func(key string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, prefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("cannot load environment: %w", err)
	}

	return &Config{k: k}, nil
}

// New returns an empty Config carrying only defaults, for tests.
func New() *Config {
	k := koanf.New(".")
	_ = k.Load(confmap.Provider(defaults, "."), nil)
	return &Config{k: k}
}

func (c *Config) GetString(key string) (string, bool) {
	if !c.k.Exists(key) {
		return "", false
	}
	return c.k.String(key), true
}

func (c *Config) GetStringOrDef(key, def string) string {
	if v, ok := c.GetString(key); ok && v != "" {
		return v
	}
	return def
}

func (c *Config) GetInt(key string) (int, bool) {
	if !c.k.Exists(key) {
		return 0, false
	}
	return c.k.Int(key), true
}

func (c *Config) GetIntOrDef(key string, def int) int {
	if v, ok := c.GetInt(key); ok {
		return v
	}
	return def
}

func (c *Config) GetBool(key string) bool {
	return c.k.Bool(key)
}

func (c *Config) GetDuration(key string) (time.Duration, bool) {
	if !c.k.Exists(key) {
		return 0, false
	}
	return c.k.Duration(key), true
}

// Set overrides a single key, primarily for tests.
func (c *Config) Set(key string, value interface{}) error {
	return c.k.Load(confmap.Provider(map[string]interface{}{key: value}, "."), nil)
}
