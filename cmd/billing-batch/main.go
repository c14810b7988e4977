package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"rental-billing-batch/internal/config"
	"rental-billing-batch/internal/jobs"
	"rental-billing-batch/internal/logger"
	"rental-billing-batch/internal/repository"
	"rental-billing-batch/internal/repository/jsonfile"
	"rental-billing-batch/internal/repository/postgres"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	inputPath := flag.String("input", "", "Dataset path override (json source)")
	outputPath := flag.String("output", "", "Report path override")
	mode := flag.String("mode", "", "Report mode override: prices, rentals or rental_modifications")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *inputPath != "" {
		cfg.Source.Path = *inputPath
	}
	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}
	if *mode != "" {
		cfg.Output.Mode = *mode
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting billing batch...", "mode", cfg.Output.Mode, "source", cfg.Source.Type)

	source, cleanup, err := buildSource(cfg)
	if err != nil {
		logger.Error("Failed to initialize dataset source", "error", err)
		log.Fatalf("Failed to initialize dataset source: %v", err)
	}
	defer cleanup()

	writer := jsonfile.NewReportWriter(cfg.Output.Path, cfg.Output.Pretty)
	runner := jobs.NewJobRunner(cfg, source, writer)

	if err := runner.BillingExport(context.Background(), cfg.Output.Mode); err != nil {
		logger.Error("Billing export failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Billing batch finished")
}

// buildSource constructs the dataset repository for the configured source
// type; the returned cleanup releases any held connection.
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
