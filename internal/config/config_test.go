package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"), false)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Lock.Backend != "local" {
		t.Fatalf("expected local lock backend, got %q", cfg.Lock.Backend)
	}
	if cfg.Lock.TTL.Std() != 30*time.Second {
		t.Fatalf("expected 30s ttl, got %s", cfg.Lock.TTL.Std())
	}
	if cfg.Engine.Parallelism != 4 {
		t.Fatalf("expected parallelism 4, got %d", cfg.Engine.Parallelism)
	}
}

func TestLoadRequiredFileMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml"), true); err == nil {
		t.Fatal("expected error for missing required file")
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := writeConfig(t, `
timezone = "UTC"

[db]
path = "/tmp/from-file.db"

[log]
level = "debug"
format = "json"

[lock]
backend = "redis"
redis_addr = "file:6379"
ttl = "10s"

[engine]
parallelism = 2
`)
	t.Setenv("OYSTRAZ_DB_PATH", "/tmp/from-env.db")
	t.Setenv("OYSTRAZ_LOCK_TTL", "45s")

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DB.Path != "/tmp/from-env.db" {
		t.Fatalf("expected env to override db path, got %q", cfg.DB.Path)
	}
	if cfg.Lock.TTL.Std() != 45*time.Second {
		t.Fatalf("expected env ttl 45s, got %s", cfg.Lock.TTL.Std())
	}
	if cfg.Lock.RedisAddr != "file:6379" {
		t.Fatalf("expected file redis addr, got %q", cfg.Lock.RedisAddr)
	}
	if cfg.Log.Level != slog.LevelDebug || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
	if cfg.Engine.Parallelism != 2 || cfg.Engine.CacheSize != 128 {
		t.Fatalf("unexpected engine config: %+v", cfg.Engine)
	}
	loc, err := cfg.Location()
	if err != nil || loc != time.UTC {
		t.Fatalf("expected UTC location, got %v (err=%v)", loc, err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "colour = \"blue\"\n")
	if _, err := Load(path, true); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoadEnvError(t *testing.T) {
	t.Setenv("OYSTRAZ_ENGINE_PARALLELISM", "many")
	_, err := Load("", false)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"bad backend", func(c *Config) { c.Lock.Backend = "etcd" }},
		{"redis without addr", func(c *Config) { c.Lock.Backend = "redis"; c.Lock.RedisAddr = " " }},
		{"zero ttl", func(c *Config) { c.Lock.TTL = 0 }},
		{"zero parallelism", func(c *Config) { c.Engine.Parallelism = 0 }},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
