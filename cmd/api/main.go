// Command api runs the todo service HTTP API.
//
// @title                      Todo Service API
// @version                    1.0
// @description                Multi-tenant todo lists behind email/password authentication.
// @BasePath                   /api
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/99minutos/todo-service/internal/api"
	"github.com/99minutos/todo-service/internal/api/metrics"
	"github.com/99minutos/todo-service/internal/api/middleware"
	"github.com/99minutos/todo-service/internal/core/service"
	mongodb "github.com/99minutos/todo-service/internal/infrastructure/db/mongo"
	redisdb "github.com/99minutos/todo-service/internal/infrastructure/db/redis"
	"github.com/99minutos/todo-service/internal/infrastructure/queue"
	"github.com/99minutos/todo-service/internal/pkg/config"
	"github.com/99minutos/todo-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "todo-service",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	var limiter middleware.Limiter
	if rdb != nil {
		defer rdb.Close()
		limiter = redisdb.NewRateLimiter(rdb, cfg.RateLimit.AuthMax, cfg.RateLimit.AuthWindow)
	} else {
		log.Warn().Msg("REDIS_ADDR is empty, auth rate limiting disabled")
	}

	users := mongodb.NewUserRepository(db)
	todos := mongodb.NewTodoRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := todos.EnsureIndexes(ctx); err != nil {
		return err
	}

	tokens, err := service.NewTokenService(service.TokenConfig{
		Secret: cfg.Auth.JWTSecret,
		TTL:    cfg.Auth.JWTExpiry,
		Issuer: cfg.Auth.JWTIssuer,
	})
	if err != nil {
		return err
	}

	poolCtx, stopPool := context.WithCancel(context.Background())
	defer stopPool()
	pool := queue.NewPool(cfg.Auth.HashWorkers, logger.Component("hash-pool"))
	pool.Start(poolCtx)

	hasher := metrics.InstrumentHasher(service.NewBcryptHasher(cfg.Auth.BcryptCost, pool))
	authService := service.NewAuthService(users, hasher, tokens, logger.Component("auth"))
	todoService := service.NewTodoService(todos, logger.Component("todos"))

	e := api.NewRouter(api.Deps{
		BasePath:    cfg.BasePath,
		ExposeCause: !cfg.IsProduction(),
		Log:         logger.Component("http"),
		AuthService: authService,
		TodoService: todoService,
		Tokens:      tokens,
		Users:       users,
		ValidID:     mongodb.IsValidID,
		Limiter:     limiter,
		Mongo:       db,
		Redis:       rdb,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().
			Str("addr", srv.Addr).
			Str("base_path", cfg.BasePath).
			Int("hash_workers", pool.Workers()).
			Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	err = g.Wait()
	stopPool()
	pool.Wait()
	return err
}
