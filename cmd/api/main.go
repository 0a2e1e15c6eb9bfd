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

	"github.com/airbean/order-system/internal/api"
	"github.com/airbean/order-system/internal/core/service"
	"github.com/airbean/order-system/internal/core/token"
	"github.com/airbean/order-system/internal/infrastructure/config"
	mongodb "github.com/airbean/order-system/internal/infrastructure/db/mongo"
	redisdb "github.com/airbean/order-system/internal/infrastructure/db/redis"
	"github.com/airbean/order-system/internal/infrastructure/queue"
	"github.com/airbean/order-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Airbean Order API
// @version      1.0
// @description  Order-management backend: authentication, product catalog, and price campaigns.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// A missing JWT_SECRET aborts here, before anything listens.
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	tokens, err := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid token configuration")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := productRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create product indexes")
	}

	// Catalog audit pipeline: sharded workers write mutation events to mongo,
	// deduplicated through redis.
	eventRepo := mongodb.NewEventRepository(db)
	dedup := redisdb.NewDedupChecker(rdb)
	eventService := service.NewEventService(eventRepo, dedup, log)
	dispatcher := queue.NewDispatcher(cfg.EventWorkers, eventService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, tokens, dispatcher, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
