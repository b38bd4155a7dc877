// Command serve exposes the generator over HTTP for previewing datasets
// without writing files: GET /v1/sample returns a small generated batch.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/langmix/internal/adapter/postgres"
	"github.com/heartmarshall/langmix/internal/adapter/postgres/vocabentry"
	"github.com/heartmarshall/langmix/internal/app"
	"github.com/heartmarshall/langmix/internal/config"
	"github.com/heartmarshall/langmix/internal/transport/rest"
	"github.com/heartmarshall/langmix/internal/vocab"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := loadStore(ctx, cfg)
	if err != nil {
		logger.Error("load vocabulary", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	health := rest.NewHealthHandler(app.BuildVersion(), len(store.Languages()))
	sample := rest.NewSampleHandler(store, cfg.Generator, cfg.Server.MaxSampleSize)

	r.Get("/health", health.Health)
	r.Get("/v1/sample", sample.Sample)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server listening",
			slog.String("addr", server.Addr),
			slog.Int("languages", len(store.Languages())),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// loadStore builds the vocabulary store from the configured source.
func loadStore(ctx context.Context, cfg *config.Config) (*vocab.Store, error) {
	switch cfg.Vocabulary.Source {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		defer pool.Close()

		repo := vocabentry.New(pool, postgres.NewTxManager(pool))
		words, err := repo.LoadAll(ctx)
		if err != nil {
			return nil, err
		}
		return vocab.FromTierMap(words), nil
	default:
		return vocab.LoadFile(cfg.Vocabulary.Path)
	}
}
