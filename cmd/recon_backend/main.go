package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/recon_workbench/internal/adapters/memory"
	portssvc "github.com/SscSPs/recon_workbench/internal/core/ports/services"
	"github.com/SscSPs/recon_workbench/internal/core/services"
	"github.com/SscSPs/recon_workbench/internal/handlers"
	"github.com/SscSPs/recon_workbench/internal/ingest"
	"github.com/SscSPs/recon_workbench/internal/platform/config"
	"github.com/SscSPs/recon_workbench/internal/scheduler"
)

// @title Reconciliation Workbench API
// @version 1.0
// @description Maker/checker reconciliation of bank and system transactions.

// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run wires the application and serves until the server fails. Deferred
// cleanup runs before main decides the exit code.
func run(cfg *config.Config, logger *slog.Logger) error {
	seed := memory.ActorSeed()
	if cfg.SeedData {
		seed = memory.DefaultSeed(time.Now().UTC())
	}
	store, err := memory.NewStore(memory.WithSeed(seed))
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	logger.Info("In-memory store ready", slog.Bool("seeded", cfg.SeedData))

	ingestor := ingest.NewSyntheticIngestor(
		ingest.WithCountRange(cfg.IngestMinTransactions, cfg.IngestMaxTransactions),
	)
	container := services.NewServiceContainer(cfg, store, ingestor)

	stopScheduler, err := startScheduler(cfg, container.Reporting, logger)
	if err != nil {
		return err
	}
	defer stopScheduler()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r, err := handlers.NewRouter(cfg, container, logger)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("server failed to run: %w", err)
	}
	return nil
}

// startScheduler starts the pending approvals digest when enabled and returns
// the function that stops it.
func startScheduler(cfg *config.Config, reporting portssvc.ReportingService, logger *slog.Logger) (func(), error) {
	if !cfg.DigestEnabled() {
		logger.Info("Pending approvals digest disabled")
		return func() {}, nil
	}

	sched := scheduler.New(logger)
	if err := sched.AddJob(cfg.DigestSchedule, scheduler.NewPendingDigestJob(reporting, logger)); err != nil {
		return nil, fmt.Errorf("failed to schedule digest: %w", err)
	}
	sched.Start()
	return sched.Stop, nil
}
