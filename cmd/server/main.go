package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"github.com/edchristie03/tube-map/internal/adapters/cache"
	"github.com/edchristie03/tube-map/internal/adapters/repositories"
	"github.com/edchristie03/tube-map/internal/api"
	"github.com/edchristie03/tube-map/internal/config"
	"github.com/edchristie03/tube-map/internal/logging"
	"github.com/edchristie03/tube-map/internal/ports"
	"github.com/edchristie03/tube-map/internal/services"
)

// main is the application composition root.
// It loads the network into SQLite, builds the path finder once against
// that snapshot, and serves route queries over HTTP.
func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	db, err := openDB(cfg.Storage.SQLitePath)
	if err != nil {
		return err
	}
	defer db.Close()

	// Initialize schema and seed from the map file on startup for local runs.
	if err := initAndSeed(db, cfg.Storage.MapPath, logger); err != nil {
		return err
	}

	repo := repositories.NewSqliteNetworkRepository(db)
	network, err := repo.LoadNetwork(context.Background())
	if err != nil {
		return fmt.Errorf("load network: %w", err)
	}
	logger.Info("network loaded",
		"stations", len(network.Stations),
		"lines", len(network.Lines),
		"connections", len(network.Connections),
	)

	finder := services.NewPathFinder(network, logger)

	routeCache, err := newRouteCache(cfg.Cache)
	if err != nil {
		return err
	}

	router := api.NewRouter(network, finder, routeCache)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	logger.Info("server listening", "addr", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}
	return srv.ListenAndServe()
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, mapPath string, logger *slog.Logger) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if _, err := os.Stat(mapPath); err != nil {
		logger.Warn("map file not found, serving previously seeded network", "path", mapPath)
		return nil
	}

	if err := repositories.SeedFromJSON(db, mapPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

func newRouteCache(cfg config.CacheConfig) (ports.RouteCache, error) {
	switch cfg.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("route cache: verify redis connection to %q: %w", cfg.RedisAddr, err)
		}
		return cache.NewRedisRouteCache(client, cfg.TTL), nil
	default:
		return cache.NewMemoryRouteCache(cfg.Size, cfg.TTL), nil
	}
}
