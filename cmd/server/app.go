package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/character/v1alpha1"
	"github.com/KirkDiggler/rpg-sheet/internal/logging"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	statsrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/stats"
)

// app holds the wired dependency graph behind the gRPC handler
type app struct {
	handler *v1alpha1.Handler
	bus     events.EventBus
	closers []func() error
}

// newApp builds storage, cache, engine, event bus and orchestrator from cfg
func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app, error) {
	a := &app{}

	var redisClient redisclient.Client
	if cfg.Storage.Driver == config.StorageRedis || cfg.Cache.Enabled {
		client, err := redisclient.New(&redisclient.Config{
			Mode:      redisclient.Mode(cfg.Redis.Mode),
			Endpoints: cfg.Redis.Endpoints,
			PoolSize:  cfg.Redis.PoolSize,
			UseTLS:    cfg.Redis.UseTLS,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create redis client")
		}
		a.closers = append(a.closers, client.Close)

		if err := redisclient.Ping(ctx, client); err != nil {
			a.Close()
			return nil, err
		}
		redisClient = client
	}

	var characterRepo characterrepo.Repository
	switch cfg.Storage.Driver {
	case config.StorageSQLite:
		repo, db, err := characterrepo.OpenSQLite(ctx, cfg.SQLite.Path, nil)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		characterRepo = repo
	default:
		repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: redisClient})
		if err != nil {
			a.Close()
			return nil, err
		}
		characterRepo = repo
	}

	var statsCache statsrepo.Repository
	if cfg.Cache.Enabled {
		cache, err := statsrepo.NewRedis(&statsrepo.Config{
			Client: redisClient,
			TTL:    cfg.Cache.StatsTTL,
		})
		if err != nil {
			a.Close()
			return nil, err
		}
		statsCache = cache
	}

	eng, err := engine.New(&engine.Config{
		ArmorSelection: engine.ArmorSelection(cfg.Engine.ArmorSelection),
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	a.bus = events.NewBus()
	logging.SubscribeEvents(a.bus, logger,
		character.EventStatsCalculated,
		character.EventPropertyChanged,
		character.EventPropertyReverted,
		character.EventHitPointsRolled,
	)

	orchestrator, err := character.New(&character.Config{
		CharacterRepo: characterRepo,
		Engine:        eng,
		EventBus:      a.bus,
		StatsCache:    statsCache,
		StatsVersion:  "armor-" + cfg.Engine.ArmorSelection,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	a.handler, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CharacterService: orchestrator,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	logger.InfoContext(ctx, "dependencies ready",
		"storage", cfg.Storage.Driver,
		"stats_cache", cfg.Cache.Enabled,
		"armor_selection", cfg.Engine.ArmorSelection)

	return a, nil
}

// Close releases connections in reverse order of creation
func (a *app) Close() {
	if a.bus != nil {
		a.bus.ClearAll()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("failed to close dependency", "error", err)
		}
	}
	a.closers = nil
}
