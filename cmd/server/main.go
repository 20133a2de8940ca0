// Package main is the entrypoint for the candidatehub API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hireloop/candidatehub/internal/ai"
	"github.com/hireloop/candidatehub/internal/api"
	"github.com/hireloop/candidatehub/internal/api/handler"
	mw "github.com/hireloop/candidatehub/internal/api/middleware"
	"github.com/hireloop/candidatehub/internal/api/response"
	"github.com/hireloop/candidatehub/internal/cache"
	"github.com/hireloop/candidatehub/internal/candidates"
	"github.com/hireloop/candidatehub/internal/config"
	"github.com/hireloop/candidatehub/internal/objectstore"
	"github.com/hireloop/candidatehub/internal/questions"
	"github.com/hireloop/candidatehub/internal/store"
	"github.com/hireloop/candidatehub/pkg/models"
)

const shutdownTimeout = 30 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config — fail fast on invalid config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.Info("config loaded", "ai_provider", cfg.AI.Provider, "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Connect to database
	pool, err := store.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()
	slog.Info("database connected")

	// 3. Run migrations
	if err := store.RunMigrations(cfg.Database.URL, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	slog.Info("database migrations applied")

	// 4. Create Redis client for rate limiting
	redisCache, err := cache.NewRedisCache(cfg.Redis.URL)
	if err != nil {
		return fmt.Errorf("create redis client: %w", err)
	}
	defer redisCache.Close()

	if err := redisCache.Ping(ctx); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	slog.Info("redis connected")

	// 5. Create object store client
	objects, err := objectstore.NewMinioStore(cfg.Objects)
	if err != nil {
		return fmt.Errorf("create object store: %w", err)
	}
	if err := objects.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("ensure bucket: %w", err)
	}
	slog.Info("object store connected", "bucket", cfg.Objects.Bucket)

	// 6. Create question generator
	generator, err := ai.NewGenerator(ctx, cfg.AI)
	if err != nil {
		return fmt.Errorf("create question generator: %w", err)
	}
	slog.Info("question generator initialized", "provider", generator.Name(), "model", generator.Model())

	// 7. Create services
	pgStore := store.NewPostgresStore(pool)
	candidateSvc := candidates.NewService(pgStore)
	questionSvc := questions.NewService(pgStore, objects, generator, cfg.AI.InferenceTimeout)

	// 8. Build router with dependencies
	deps := api.Dependencies{
		RateLimit: mw.NewRateLimit(redisCache, 60),

		HealthHandler:     healthHandler(pgStore, redisCache, objects),
		RangeHandler:      handler.NewRangeHandler(candidateSvc),
		RankedListHandler: handler.NewRankedListHandler(candidateSvc),
		AcceptHandler:     handler.NewVerdictHandler(candidateSvc, models.StatusAccepted),
		RejectHandler:     handler.NewVerdictHandler(candidateSvc, models.StatusRejected),
		QuestionsHandler:  handler.NewQuestionsHandler(questionSvc),
		SampleHandler:     handler.NewSampleHandler(candidateSvc),
	}

	router := api.NewRouter(deps)

	// 9. Start HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining connections...")
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// healthHandler checks database, redis, and object store connectivity.
func healthHandler(s store.Store, c cache.Cache, o objectstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{
			"database":     "ok",
			"redis":        "ok",
			"object_store": "ok",
		}

		if err := s.Ping(r.Context()); err != nil {
			checks["database"] = "degraded"
		}
		if err := c.Ping(r.Context()); err != nil {
			checks["redis"] = "degraded"
		}
		if err := o.Ping(r.Context()); err != nil {
			checks["object_store"] = "degraded"
		}

		for _, status := range checks {
			if status != "ok" {
				response.Error(w, http.StatusServiceUnavailable, "DEGRADED",
					"One or more services degraded", checks)
				return
			}
		}

		response.JSON(w, map[string]any{
			"status":   "ok",
			"services": checks,
		})
	}
}
