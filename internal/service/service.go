package service

import (
	"context"

	"rental-billing-batch/internal/domain"
)

// BillingService computes billing reports over a loaded record store.
//
// Every method follows a strict failure policy: the first record that cannot
// be priced (unresolvable reference, unparseable date) aborts the whole
// report with an error naming the record. A financial report is never
// returned partially.
type BillingService interface {
	// EffectiveRental returns the rental with all of its modifications
	// applied in stored order, as a detached value. The stored record is
	// never touched.
	EffectiveRental(rentalID int) (domain.Rental, error)

	// PriceReport prices every rental as stored and emits the flat
	// {id, price} report.
	PriceReport(ctx context.Context) (*domain.PriceReport, error)

	// RentalReport emits per-rental ledger actions, priced from the
	// rentals as stored (no overlay).
	RentalReport(ctx context.Context) (*domain.RentalReport, error)

	// ModificationReport emits per-modification ledger actions, priced
	// from each modification's effective rental.
	ModificationReport(ctx context.Context) (*domain.ModificationReport, error)
}
