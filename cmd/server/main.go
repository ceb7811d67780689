package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/toyshare/toyshare-api/internal/api"
	"github.com/toyshare/toyshare-api/internal/core/domain"
	"github.com/toyshare/toyshare-api/internal/core/ports"
	"github.com/toyshare/toyshare-api/internal/core/service"
	"github.com/toyshare/toyshare-api/internal/infrastructure/config"
	"github.com/toyshare/toyshare-api/internal/infrastructure/geo"
	"github.com/toyshare/toyshare-api/internal/infrastructure/storage"
	memorystore "github.com/toyshare/toyshare-api/internal/infrastructure/storage/memory"
	mongostore "github.com/toyshare/toyshare-api/internal/infrastructure/storage/mongo"
	redisstore "github.com/toyshare/toyshare-api/internal/infrastructure/storage/redis"
	"github.com/toyshare/toyshare-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real environments configure through the process env.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := buildSlotStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("failed to initialise storage")
	}
	defer closeStore()

	listings := service.NewListingService(storage.NewListingRepository(store), log)
	if err := listings.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to initialise listing store")
	}

	sessions := service.NewSessionService(
		storage.NewSessionRepository(store),
		domain.SeedUsers(),
		cfg.SessionDelay,
		cfg.JWTSecret,
		24*time.Hour,
		log,
	)
	if err := sessions.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to initialise session store")
	}

	suggestions := service.NewSuggestionService(service.NewGazetteerSource())

	var locator ports.Locator
	if cfg.Geo.Mode != "off" {
		locator = geo.NewStaticLocator(cfg.Geo.Mode, cfg.Geo.Lat, cfg.Geo.Lng)
	}
	geolocation := service.NewGeolocationService(locator, log)

	e := api.NewRouter(api.Dependencies{
		Listings:    listings,
		Sessions:    sessions,
		Suggestions: suggestions,
		Geolocation: geolocation,
		Store:       store,
		JWTSecret:   cfg.JWTSecret,
		Logger:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("driver", cfg.Storage.Driver).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// buildSlotStore constructs the configured slot-store driver and returns it
// with its cleanup function.
func buildSlotStore(ctx context.Context, cfg *config.Config) (ports.SlotStore, func(), error) {
	switch cfg.Storage.Driver {
	case "memory":
		return memorystore.NewStore(), func() {}, nil

	case "redis":
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return redisstore.NewStore(client), func() { _ = client.Close() }, nil

	case "mongo":
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}
		return mongostore.NewStore(db), cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
