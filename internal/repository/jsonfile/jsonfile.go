package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"rental-billing-batch/internal/domain"
	"rental-billing-batch/internal/logger"
	"rental-billing-batch/internal/repository"
)

// DefaultDatasetPath is where datasets live when no path is configured.
const DefaultDatasetPath = "./data.json"

type datasetRepository struct {
	path string
}

// NewDatasetRepository reads the dataset from a JSON file.
func NewDatasetRepository(path string) repository.DatasetRepository {
	if path == "" {
		path = DefaultDatasetPath
	}
	return &datasetRepository{path: path}
}

func (r *datasetRepository) LoadDataset(ctx context.Context) (*domain.Dataset, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	// Unknown keys are rejected rather than silently dropped: a misspelled
	// field in a financial dataset must surface, not default to zero.
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var ds domain.Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", r.path, err)
	}

	logger.Debug("Dataset loaded", "path", r.path,
		"cars", len(ds.Cars), "rentals", len(ds.Rentals),
		"modifications", len(ds.RentalModifications))
	return &ds, nil
}

type reportWriter struct {
	path   string
	pretty bool
}

// NewReportWriter persists report documents as JSON files.
func NewReportWriter(path string, pretty bool) repository.ReportWriter {
	return &reportWriter{path: path, pretty: pretty}
}

func (w *reportWriter) WriteReport(ctx context.Context, report any) error {
	var (
		data []byte
		err  error
	)
	if w.pretty {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", w.path, err)
	}

	logger.Info("Report written", "path", w.path, "bytes", len(data))
	return nil
}
