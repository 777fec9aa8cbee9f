package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/joshlewis24/cinebook/internal/config"
	"github.com/joshlewis24/cinebook/internal/mongo"
	"github.com/joshlewis24/cinebook/internal/redis"
	mongorepo "github.com/joshlewis24/cinebook/internal/repository/mongo"
	redisrepo "github.com/joshlewis24/cinebook/internal/repository/redis"
	"github.com/joshlewis24/cinebook/internal/service"
	httpgin "github.com/joshlewis24/cinebook/internal/transport/http/gin"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// The store connection is the only fatal dependency.
	db, err := mongo.New(context.Background(), mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mongo: %w", err)
	}

	// Rate limiting is opt-in via REDIS_ADDR.
	var limiter httpgin.Limiter
	if cfg.Redis.Addr != "" {
		rdb, err := redis.New(context.Background(), redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		limiter = redisrepo.NewFixedWindowLimiter(rdb, "cinebook:v1:rl", 60, 1*time.Minute)
	} else {
		logger.Info("REDIS_ADDR not set, rate limiting disabled")
	}

	store := mongorepo.NewStore(db)

	services := service.NewServices(store, service.Config{})

	router := httpgin.NewRouter(services, limiter, logger)

	return &App{
		cfg:    cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler: router,
		},
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("HTTP server listening", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	return g.Wait()
}
