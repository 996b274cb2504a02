// Package app wires configuration, logging, storage and the repositories
// into one object shared by the CLI and the MCP server.
package app

import (
	"context"
	"fmt"

	"orbdyn/internal/adapters/jsonfile"
	"orbdyn/internal/adapters/memory"
	"orbdyn/internal/adapters/postgres"
	"orbdyn/internal/adapters/redis"
	"orbdyn/internal/adapters/sqlite"
	"orbdyn/internal/codec"
	"orbdyn/internal/config"
	"orbdyn/internal/domain"
	"orbdyn/internal/logger"
	"orbdyn/internal/ports"
	"orbdyn/internal/repository"
	"orbdyn/internal/storage"
)

// App bundles the loaded configuration, logger, store and repositories
type App struct {
	Config     *config.Config
	Logger     logger.Logger
	Store      *storage.Adapter
	Resources  *repository.Resources
	Categories *repository.Categories
	Importer   *codec.Importer
}

// New opens the configured store and loads both collections
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log, err := logger.New(cfg.LogLevel, cfg.PrettyLog)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return NewWithLogger(ctx, cfg, log)
}

// NewWithLogger is New with a caller-supplied logger
func NewWithLogger(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	kv, err := OpenStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	store := storage.New(kv, log)
	categories := repository.NewCategories(ctx, store, repository.WithLogger(log))
	resources := repository.NewResources(ctx, store, categories, repository.WithLogger(log))

	log.Debug("collections loaded",
		logger.String("store", cfg.Store),
		logger.Int("resources", len(resources.List())),
		logger.Int("categories", len(categories.List())))

	return &App{
		Config:     cfg,
		Logger:     log,
		Store:      store,
		Resources:  resources,
		Categories: categories,
		Importer:   codec.NewImporter(),
	}, nil
}

// OpenStore opens the KV backend named by cfg.Store
func OpenStore(ctx context.Context, cfg *config.Config, log logger.Logger) (ports.KVStore, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return memory.NewStore(), nil

	case config.StoreJSONFile:
		dir, err := cfg.ExpandedDataDir()
		if err != nil {
			return nil, err
		}
		store, err := jsonfile.NewStore(dir)
		if err != nil {
			return nil, err
		}
		return store, nil

	case config.StoreSQLite:
		path, err := cfg.SQLitePath()
		if err != nil {
			return nil, err
		}
		store, err := sqlite.Open(path)
		if err != nil {
			return nil, err
		}
		return store, nil

	case config.StorePostgres:
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return store, nil

	case config.StoreRedis:
		log.Infof("Connecting to Redis at %s", cfg.Redis.Addr)
		opts := redis.DefaultConnectOptions(cfg.Redis.Addr)
		opts.User = cfg.Redis.User
		opts.Password = cfg.Redis.Password
		opts.DB = cfg.Redis.DB
		if cfg.Redis.ConnectTimeout > 0 {
			opts.ConnectTimeout = cfg.Redis.ConnectTimeout
		}
		client, err := redis.Connect(ctx, opts, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		return redis.NewStore(client, cfg.Redis.Prefix), nil

	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// Theme returns the configured theme override, or the stored preference
func (a *App) Theme(ctx context.Context) domain.Theme {
	if a.Config.Theme != "" {
		if t, err := domain.ParseTheme(a.Config.Theme); err == nil {
			return t
		}
	}
	return a.Store.Theme(ctx)
}

// Close releases the store and flushes the logger
func (a *App) Close() error {
	err := a.Store.Close()
	_ = a.Logger.Sync()
	return err
}
