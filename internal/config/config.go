// Package config loads CLI and server settings from a YAML or JSON file and the environment.
package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/nfa/pkg/domain"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendBolt   = "bolt"
)

// ErrInvalidConfig is returned when a loaded configuration cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

type Log struct {
	Level string `yaml:"level" json:"level" env:"NFA_LOG_LEVEL, overwrite"`
}

// Random holds the knobs of the generate command.
type Random struct {
	States       int     `yaml:"states" json:"states" env:"NFA_RANDOM_STATES, overwrite"`
	AlphabetSize int     `yaml:"alphabet_size" json:"alphabet_size" env:"NFA_RANDOM_ALPHABET_SIZE, overwrite"`
	Density      float64 `yaml:"density" json:"density" env:"NFA_RANDOM_DENSITY, overwrite"`
	AcceptRatio  float64 `yaml:"accept_ratio" json:"accept_ratio" env:"NFA_RANDOM_ACCEPT_RATIO, overwrite"`
	Seed         uint64  `yaml:"seed" json:"seed" env:"NFA_RANDOM_SEED, overwrite"`
}

// Store selects where named automata are kept.
type Store struct {
	Backend   string `yaml:"backend" json:"backend" env:"NFA_STORE_BACKEND, overwrite"`
	Dir       string `yaml:"dir" json:"dir" env:"NFA_STORE_DIR, overwrite"`
	RedisAddr string `yaml:"redis_addr" json:"redis_addr" env:"NFA_REDIS_ADDR, overwrite"`
	BoltPath  string `yaml:"bolt_path" json:"bolt_path" env:"NFA_BOLT_PATH, overwrite"`
}

type Server struct {
	Addr string `yaml:"addr" json:"addr" env:"NFA_SERVER_ADDR, overwrite"`
}

// Config is the full configuration of the nfa tool.
type Config struct {
	Log    Log    `yaml:"log" json:"log"`
	Random Random `yaml:"random" json:"random"`
	Store  Store  `yaml:"store" json:"store"`
	Server Server `yaml:"server" json:"server"`
}

// Default returns the built-in configuration.
func Default() Config {
	r := domain.DefaultRandomConfig()
	return Config{
		Log: Log{Level: "info"},
		Random: Random{
			States:       r.States,
			AlphabetSize: r.AlphabetSize,
			Density:      r.Density,
			AcceptRatio:  r.AcceptRatio,
			Seed:         r.Seed,
		},
		Store: Store{
			Backend:   BackendFile,
			Dir:       ".nfa",
			RedisAddr: "localhost:6379",
			BoltPath:  "nfa.db",
		},
		Server: Server{Addr: ":8080"},
	}
}

// Load builds the configuration from defaults, the optional file at path and the
// environment, in that order of precedence. A missing file is not an error when
// path is empty.
func Load(ctx context.Context, path string) (Config, error) {
	return LoadWith(ctx, path, envconfig.OsLookuper())
}

// LoadWith is Load with an explicit environment lookuper.
func LoadWith(ctx context.Context, path string, l envconfig.Lookuper) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := readFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		return nil
	}
	// Default to YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Validate checks the store backend and the random knobs.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendFile, BackendRedis, BackendBolt:
	default:
		return fmt.Errorf("%w: unknown store backend %q", ErrInvalidConfig, c.Store.Backend)
	}
	if err := c.RandomConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// RandomConfig converts the random section for domain.Random.
func (c Config) RandomConfig() domain.RandomConfig {
	return domain.RandomConfig{
		States:       c.Random.States,
		AlphabetSize: c.Random.AlphabetSize,
		Density:      c.Random.Density,
		AcceptRatio:  c.Random.AcceptRatio,
		Seed:         c.Random.Seed,
	}
}
