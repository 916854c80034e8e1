package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "LVLGRAPH_"

// Loader reads configuration from defaults, a YAML file and the environment.
type Loader struct {
	k         *koanf.Koanf
	path      string
	envPrefix string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFile reads path as YAML. Without it only defaults and env apply.
func WithFile(path string) LoaderOption {
	return func(l *Loader) { l.path = path }
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) { l.envPrefix = prefix }
}

// NewLoader creates a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: envPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load merges sources with increasing priority:
// 1. Defaults
// 2. Config file (yaml)
// 3. Environment variables
func (l *Loader) Load() (*Config, error) {
	// 1. Defaults
	if err := l.k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. File, when given it must exist
	if l.path != "" {
		if err := l.k.Load(file.Provider(l.path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", l.path, err)
		}
	}

	// 3. Environment overrides file
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}

	// 4. Decode and validate
	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() map[string]any {
	return map[string]any{
		"log.level":       "info",
		"log.format":      "text",
		"log.file":        "",
		"log.max_size":    100,
		"log.max_backups": 3,
		"metrics.file":    "",
		"workers":         4,
		"timeout":         "30s",
	}
}

// envKeys maps env names (prefix stripped, lower-cased) whose keys contain
// underscores. Everything else maps "_" to ".".
var envKeys = map[string]string{
	"log_max_size":    "log.max_size",
	"log_max_backups": "log.max_backups",
}

func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(envKey string, value string) (string, interface{}) {
		key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))
		if mapped, ok := envKeys[key]; ok {
			return mapped, value
		}

		return strings.ReplaceAll(key, "_", "."), value
	}), nil)
}
