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

	"github.com/google/uuid"

	"github.com/example/school-activities/internal/application"
	"github.com/example/school-activities/internal/catalog"
	"github.com/example/school-activities/internal/config"
	httptransport "github.com/example/school-activities/internal/http"
	"github.com/example/school-activities/internal/persistence/sqlite"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadDotenv(); err != nil {
		logger.Error("failed to load .env file", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.NewStore(cfg.SQLiteDSN)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("failed to close store", "error", cerr)
		}
	}()

	seedCatalog, err := catalog.Load()
	if err != nil {
		logger.Error("failed to load seed catalog", "error", err)
		os.Exit(1)
	}

	idGenerator := uuid.NewString
	now := time.Now

	activityRepo := sqlite.NewActivityRepository(store)
	participantRepo := sqlite.NewParticipantRepository(store)

	initializer := application.NewInitializer(store, activityRepo, idGenerator, now, logger)
	if err := initializer.Initialize(context.Background(), seedCatalog); err != nil {
		logger.Error("failed to initialize store", "error", err)
		os.Exit(1)
	}

	signupService := application.NewSignupServiceWithLogger(activityRepo, participantRepo, idGenerator, now, logger)
	activityHandler := httptransport.NewActivityHandler(signupService, logger)

	handler := httptransport.NewRouter(httptransport.RouterConfig{
		Activities: activityHandler,
		Middleware: []func(http.Handler) http.Handler{
			httptransport.RequestLogger(logger),
		},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("activities API listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}
