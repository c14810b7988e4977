package jobs

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"rental-billing-batch/internal/config"
	"rental-billing-batch/internal/logger"
	"rental-billing-batch/internal/repository"
	"rental-billing-batch/internal/service"
	"rental-billing-batch/internal/store"
)

// JobRunner executes billing batch jobs against a dataset source and a
// report sink.
type JobRunner struct {
	cfg    *config.Config
	source repository.DatasetRepository
	writer repository.ReportWriter
}

func NewJobRunner(cfg *config.Config, source repository.DatasetRepository, writer repository.ReportWriter) *JobRunner {
	return &JobRunner{cfg: cfg, source: source, writer: writer}
}

// Config returns the runner's configuration (used for cron registration)
func (j *JobRunner) Config() *config.Config {
	return j.cfg
}

// RunBillingExport runs the configured billing export; scheduler entry point.
func (j *JobRunner) RunBillingExport() {
	if err := j.BillingExport(context.Background(), j.cfg.Output.Mode); err != nil {
		logger.Error("Billing export failed", "error", err)
	}
}

// BillingExport loads the dataset, computes the report for the given mode
// and writes it to the sink. Any record that cannot be resolved or priced
// aborts the run before the sink is touched: a financial report is never
// written partially.
func (j *JobRunner) BillingExport(ctx context.Context, mode string) error {
	runID := uuid.NewString()
	log := logger.Get().With("run_id", runID, "mode", mode)
	log.Info("Starting billing export")

	ds, err := j.source.LoadDataset(ctx)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	st, err := store.New(ds)
	if err != nil {
		return fmt.Errorf("build record store: %w", err)
	}

	svc := service.NewBillingService(st)

	var report any
	switch mode {
	case config.ModePrices:
		report, err = svc.PriceReport(ctx)
	case config.ModeRentals:
		report, err = svc.RentalReport(ctx)
	case config.ModeModifications:
		report, err = svc.ModificationReport(ctx)
	default:
		return fmt.Errorf("unknown report mode %q", mode)
	}
	if err != nil {
		return err
	}

	if err := j.writer.WriteReport(ctx, report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	log.Info("Billing export completed")
	return nil
}
