package repository

import (
	"context"

	"rental-billing-batch/internal/domain"
)

// DatasetRepository loads the full input dataset in one shot; the batch
// never goes back to the source afterwards.
type DatasetRepository interface {
	LoadDataset(ctx context.Context) (*domain.Dataset, error)
}

// ReportWriter persists one computed report document.
type ReportWriter interface {
	WriteReport(ctx context.Context, report any) error
}
