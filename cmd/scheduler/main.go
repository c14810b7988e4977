package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"rental-billing-batch/internal/config"
	"rental-billing-batch/internal/jobs"
	"rental-billing-batch/internal/logger"
	"rental-billing-batch/internal/repository"
	"rental-billing-batch/internal/repository/jsonfile"
	"rental-billing-batch/internal/repository/postgres"
	"rental-billing-batch/internal/scheduler"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	runOnce := flag.Bool("run-once", false, "Run the billing export once and exit")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting billing scheduler...", "log_level", cfg.Log.Level)

	source, cleanup, err := buildSource(cfg)
	if err != nil {
		logger.Error("Failed to initialize dataset source", "error", err)
		log.Fatalf("Failed to initialize dataset source: %v", err)
	}
	defer cleanup()

	writer := jsonfile.NewReportWriter(cfg.Output.Path, cfg.Output.Pretty)
	jobRunner := jobs.NewJobRunner(cfg, source, writer)

	// Check if running the export once
	if *runOnce {
		logger.Info("Running billing export once")
		if err := jobRunner.BillingExport(context.Background(), cfg.Output.Mode); err != nil {
			logger.Error("Billing export failed", "error", err)
			os.Exit(1)
		}
		logger.Info("Billing export completed")
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Billing scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down billing scheduler...")
	cronScheduler.Stop()
	logger.Info("Billing scheduler stopped. Goodbye!")
}

func buildSource(cfg *config.Config) (repository.DatasetRepository, func(), error) {
	switch cfg.Source.Type {
	case config.SourceTypePostgres:
		logger.Info("Connecting to database...", "host", cfg.Source.Database.Host, "port", cfg.Source.Database.Port)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}
		logger.Info("Database connection established")
		return postgres.NewDatasetRepository(db), func() { db.Close() }, nil
	default:
		return jsonfile.NewDatasetRepository(cfg.Source.Path), func() {}, nil
	}
}
