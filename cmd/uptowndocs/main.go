package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/uptown-october/uptown-docs/internal/app"
	"github.com/uptown-october/uptown-docs/internal/auth"
	"github.com/uptown-october/uptown-docs/internal/deals"
	"github.com/uptown-october/uptown-docs/internal/documents"
	documentshttp "github.com/uptown-october/uptown-docs/internal/documents/http"
	"github.com/uptown-october/uptown-docs/internal/identity"
	"github.com/uptown-october/uptown-docs/internal/locale"
	"github.com/uptown-october/uptown-docs/internal/observability"
	"github.com/uptown-october/uptown-docs/internal/platform/db"
	"github.com/uptown-october/uptown-docs/internal/pricing"
	"github.com/uptown-october/uptown-docs/internal/reservations"
	"github.com/uptown-october/uptown-docs/internal/units"
	"github.com/uptown-october/uptown-docs/jobs"
	"github.com/uptown-october/uptown-docs/report"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.Connect(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessions := auth.NewSessionManager(redisClient, cfg.SessionTTL, cfg.IsProduction())
	authService := auth.NewService(auth.NewRepository(pool))
	authHandler := auth.NewHandler(logger, authService, sessions)
	authMiddleware := auth.Middleware{Sessions: sessions, Logger: logger}

	clock := locale.NewClock(cfg.TimezoneCandidates()...)
	dealStore := deals.NewStore(pool)
	unitStore := units.NewStore(pool)
	resvStore := reservations.NewStore(pool)
	metrics := observability.NewMetrics()

	renderer := report.Shared(cfg.GotenbergURL)

	service, err := documents.NewService(documents.Deps{
		Clock:      clock,
		Deals:      dealStore,
		Units:      unitStore,
		Resv:       resvStore,
		Gate:       reservations.NewGate(resvStore, unitStore, logger),
		Pricing:    pricing.NewResolver(unitStore, logger),
		Identities: identity.NewResolver(identity.NewStore(pool), logger),
		Speller:    locale.Speller{},
		Renderer:   renderer,
		Logger:     logger,
	})
	if err != nil {
		logger.Error("init document service", slog.Any("error", err))
		os.Exit(1)
	}
	documentsHandler := documentshttp.NewHandler(logger, service, metrics)

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		Auth:             authMiddleware,
		AuthHandler:      authHandler,
		DocumentsHandler: documentsHandler,
		JobsHandler:      jobs.NewHandler(inspector, logger),
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}
