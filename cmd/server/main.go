// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/agarwalaashrut/JobAppREST/internal/api"
	"github.com/agarwalaashrut/JobAppREST/internal/common/config"
	"github.com/agarwalaashrut/JobAppREST/internal/common/database"
	"github.com/agarwalaashrut/JobAppREST/internal/common/logger"
	"github.com/agarwalaashrut/JobAppREST/internal/handlers"
	"github.com/agarwalaashrut/JobAppREST/internal/jobsearch"
	"github.com/agarwalaashrut/JobAppREST/internal/store"
)

const (
	mongoMaxRetries   = 15
	mongoInitialDelay = 2 * time.Second
	shutdownTimeout   = 10 * time.Second
	templatesGlob     = "web/templates/*.html"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		return 1
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting job application service",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	ctx := context.Background()

	// --- Init MongoDB with retry ---
	var mongoClient *database.MongoClient
	err = retryWithBackoff(func() error {
		var err error
		mongoClient, err = database.NewMongo(cfg.Database.Mongo)
		if err != nil {
			return err
		}
		pingCtx, cancel := context.WithTimeout(ctx,
			time.Duration(cfg.Database.Mongo.ConnectTimeout)*time.Millisecond)
		defer cancel()
		return mongoClient.Ping(pingCtx)
	}, mongoMaxRetries, mongoInitialDelay, zapLog, "MongoDB connection")

	if err != nil {
		zapLog.Error("mongo failed after retries", zap.Error(err))
		return 1
	}
	defer mongoClient.Close(context.Background())
	zapLog.Info("MongoDB connected successfully")

	// --- Wire components ---
	searchClient := jobsearch.NewClient(jobsearch.LoadConfig(cfg.APIs.JobSearch), log)
	appStore := store.NewApplicationStore(mongoClient.Applications(), log)

	server := api.NewServer(cfg, log,
		handlers.NewSearchHandler(searchClient, log),
		handlers.NewApplicationsHandler(appStore, cfg.Applications, log),
		handlers.NewHealthHandler(cfg.App.Version, mongoClient),
	)
	server.LoadTemplates(templatesGlob)

	// --- Serve until signalled ---
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		zapLog.Info("Shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			zapLog.Error("server failed", zap.Error(err))
			return 1
		}
		return 0
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
		return 1
	}

	zapLog.Info("Shutdown complete")
	return 0
}
