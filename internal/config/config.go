// Package config loads Oystraz settings from an optional TOML file overlaid
// by OYSTRAZ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

const EnvPrefix = "OYSTRAZ_"

type Config struct {
	DB       DBConfig     `toml:"db" envPrefix:"DB_"`
	Timezone string       `toml:"timezone" env:"TIMEZONE"`
	Log      LogConfig    `toml:"log" envPrefix:"LOG_"`
	Lock     LockConfig   `toml:"lock" envPrefix:"LOCK_"`
	Engine   EngineConfig `toml:"engine" envPrefix:"ENGINE_"`
}

type DBConfig struct {
	Path string `toml:"path" env:"PATH"` // empty means ~/.oystraz.db
}

type LogConfig struct {
	Level     slog.Level `toml:"level" env:"LEVEL"`
	Format    string     `toml:"format" env:"FORMAT"` // text or json
	AddSource bool       `toml:"add_source" env:"ADD_SOURCE"`
}

type LockConfig struct {
	Backend   string   `toml:"backend" env:"BACKEND"` // local or redis
	RedisAddr string   `toml:"redis_addr" env:"REDIS_ADDR"`
	RedisDB   int      `toml:"redis_db" env:"REDIS_DB"`
	TTL       Duration `toml:"ttl" env:"TTL"`
}

type EngineConfig struct {
	CacheSize   int `toml:"cache_size" env:"CACHE_SIZE"`
	Parallelism int `toml:"parallelism" env:"PARALLELISM"`
}

// Duration reads "30s"-style strings from both TOML and the environment.
type Duration time.Duration

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

func Default() Config {
	return Config{
		Log:    LogConfig{Level: slog.LevelWarn, Format: "text"},
		Lock:   LockConfig{Backend: "local", RedisAddr: "localhost:6379", TTL: Duration(30 * time.Second)},
		Engine: EngineConfig{CacheSize: 128, Parallelism: 4},
	}
}

// DefaultPath returns ~/.config/oystraz/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(dir, "oystraz", "config.toml"), nil
}

// Load returns the defaults overlaid by the TOML file at path and then by the
// environment. A missing file is not an error unless required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			if !errors.Is(err, fs.ErrNotExist) || required {
				return nil, err
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := toml.NewDecoder(file).DisallowUnknownFields().Decode(cfg); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log format must be text or json, got %q", c.Log.Format)
	}
	switch c.Lock.Backend {
	case "local":
	case "redis":
		if strings.TrimSpace(c.Lock.RedisAddr) == "" {
			return errors.New("lock backend redis needs redis_addr")
		}
	default:
		return fmt.Errorf("lock backend must be local or redis, got %q", c.Lock.Backend)
	}
	if c.Lock.TTL.Std() <= 0 {
		return errors.New("lock ttl must be positive")
	}
	if c.Engine.CacheSize < 1 {
		return errors.New("engine cache_size must be at least 1")
	}
	if c.Engine.Parallelism < 1 {
		return errors.New("engine parallelism must be at least 1")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone; empty means the system's local zone.
func (c *Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.Timezone) == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
