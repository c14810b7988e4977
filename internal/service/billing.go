package service

import (
	"context"
	"fmt"

	"rental-billing-batch/internal/billing"
	"rental-billing-batch/internal/domain"
	"rental-billing-batch/internal/logger"
	"rental-billing-batch/internal/pricing"
	"rental-billing-batch/internal/store"
)

type billingService struct {
	store *store.Store
}

func NewBillingService(st *store.Store) BillingService {
	return &billingService{store: st}
}

func (s *billingService) EffectiveRental(rentalID int) (domain.Rental, error) {
	base, err := s.store.RentalByID(rentalID)
	if err != nil {
		return domain.Rental{}, err
	}

	// Work on a value copy so overrides never reach the stored record.
	rental := base
	for _, m := range s.store.ModificationsFor(rentalID) {
		if m.StartDate != nil {
			rental.StartDate = *m.StartDate
		}
		if m.EndDate != nil {
			rental.EndDate = *m.EndDate
		}
		if m.Distance != nil {
			rental.Distance = *m.Distance
		}
	}
	return rental, nil
}

func (s *billingService) PriceReport(ctx context.Context) (*domain.PriceReport, error) {
	logger.EnterMethod("billingService.PriceReport")

	report := &domain.PriceReport{
		Rentals: make([]domain.RentalPrice, 0, len(s.store.Rentals())),
	}
	for _, rental := range s.store.Rentals() {
		price, _, err := s.bill(rental)
		if err != nil {
			logger.ExitMethodWithError("billingService.PriceReport", err, "rental_id", rental.ID)
			return nil, err
		}
		report.Rentals = append(report.Rentals, domain.RentalPrice{ID: rental.ID, Price: price})
	}

	logger.ExitMethod("billingService.PriceReport", "rentals", len(report.Rentals))
	return report, nil
}

func (s *billingService) RentalReport(ctx context.Context) (*domain.RentalReport, error) {
	logger.EnterMethod("billingService.RentalReport")

	report := &domain.RentalReport{
		Rentals: make([]domain.RentalActions, 0, len(s.store.Rentals())),
	}
	for _, rental := range s.store.Rentals() {
		price, commission, err := s.bill(rental)
		if err != nil {
			logger.ExitMethodWithError("billingService.RentalReport", err, "rental_id", rental.ID)
			return nil, err
		}
		report.Rentals = append(report.Rentals, domain.RentalActions{
			ID:      rental.ID,
			Actions: billing.Actions(price, commission),
		})
	}

	logger.ExitMethod("billingService.RentalReport", "rentals", len(report.Rentals))
	return report, nil
}

func (s *billingService) ModificationReport(ctx context.Context) (*domain.ModificationReport, error) {
	logger.EnterMethod("billingService.ModificationReport")

	report := &domain.ModificationReport{
		RentalModifications: make([]domain.ModificationActions, 0, len(s.store.Modifications())),
	}
	for _, mod := range s.store.Modifications() {
		effective, err := s.EffectiveRental(mod.RentalID)
		if err != nil {
			err = fmt.Errorf("modification %d: %w", mod.ID, err)
			logger.ExitMethodWithError("billingService.ModificationReport", err, "modification_id", mod.ID)
			return nil, err
		}
		price, commission, err := s.bill(effective)
		if err != nil {
			err = fmt.Errorf("modification %d: %w", mod.ID, err)
			logger.ExitMethodWithError("billingService.ModificationReport", err, "modification_id", mod.ID)
			return nil, err
		}
		report.RentalModifications = append(report.RentalModifications, domain.ModificationActions{
			ID:       mod.ID,
			RentalID: mod.RentalID,
			Actions:  billing.Actions(price, commission),
		})
	}

	logger.ExitMethod("billingService.ModificationReport", "modifications", len(report.RentalModifications))
	return report, nil
}

// bill prices one (possibly effective) rental and computes its commission.
func (s *billingService) bill(rental domain.Rental) (int, billing.Commission, error) {
	car, err := s.store.CarByID(rental.CarID)
	if err != nil {
		return 0, billing.Commission{}, fmt.Errorf("rental %d: %w", rental.ID, err)
	}
	price, err := pricing.Price(rental, car)
	if err != nil {
		return 0, billing.Commission{}, err
	}
	days, err := rental.DurationDays()
	if err != nil {
		return 0, billing.Commission{}, err
	}
	return price, billing.Compute(price, days), nil
}
