package root

import (
	"context"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/dingonewen/oystraz/internal/config"
	"github.com/dingonewen/oystraz/internal/engine"
	"github.com/dingonewen/oystraz/internal/lock"
	"github.com/dingonewen/oystraz/internal/logging"
	"github.com/dingonewen/oystraz/internal/storage"
)

func loadConfig() (*config.Config, error) {
	if strings.TrimSpace(flagConfig) != "" {
		return config.Load(flagConfig, true)
	}
	path, err := config.DefaultPath()
	if err != nil {
		return config.Load("", false)
	}
	return config.Load(path, false)
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}

	dbPath := flagDB
	if strings.TrimSpace(dbPath) == "" {
		dbPath = cfg.DB.Path
	}
	path, err := storage.ResolveDBPath(dbPath)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	closers := []func(){func() { _ = db.Close() }}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var locker engine.Locker = lock.NewLocal()
	if cfg.Lock.Backend == "redis" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Lock.RedisAddr, DB: cfg.Lock.RedisDB})
		closers = append(closers, func() { _ = client.Close() })
		locker = lock.NewRedis(client, lock.RedisConfig{TTL: cfg.Lock.TTL.Std()})
	}

	svc, err := engine.NewService(db,
		engine.WithLocker(locker),
		engine.WithLogger(logging.New(os.Stderr, cfg.Log)),
		engine.WithLocation(loc),
		engine.WithCacheSize(cfg.Engine.CacheSize),
		engine.WithParallelism(cfg.Engine.Parallelism),
	)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
