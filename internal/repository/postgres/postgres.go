package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"rental-billing-batch/internal/domain"
	"rental-billing-batch/internal/logger"
	"rental-billing-batch/internal/repository"
)

type datasetRepository struct {
	db *sql.DB
}

// NewDatasetRepository loads the dataset from the cars, rentals and
// rental_modifications tables. Rows are read in id order, which is the
// insertion order of the seeded datasets.
func NewDatasetRepository(db *sql.DB) repository.DatasetRepository {
	return &datasetRepository{db: db}
}

func (r *datasetRepository) LoadDataset(ctx context.Context) (*domain.Dataset, error) {
	ds := &domain.Dataset{}
	if err := r.loadCars(ctx, ds); err != nil {
		return nil, err
	}
	if err := r.loadRentals(ctx, ds); err != nil {
		return nil, err
	}
	if err := r.loadModifications(ctx, ds); err != nil {
		return nil, err
	}
	return ds, nil
}

func (r *datasetRepository) loadCars(ctx context.Context, ds *domain.Dataset) error {
	query := `SELECT id, price_per_day, price_per_km FROM cars ORDER BY id`
	logger.DatabaseCall("loadCars", query)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("loadCars", 0, err)
		return fmt.Errorf("failed to load cars: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Car
		if err := rows.Scan(&c.ID, &c.PricePerDay, &c.PricePerKm); err != nil {
			return fmt.Errorf("failed to scan car: %w", err)
		}
		ds.Cars = append(ds.Cars, c)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read cars: %w", err)
	}
	logger.DatabaseResult("loadCars", int64(len(ds.Cars)), nil)
	return nil
}

func (r *datasetRepository) loadRentals(ctx context.Context, ds *domain.Dataset) error {
	query := `SELECT id, car_id, start_date, end_date, distance FROM rentals ORDER BY id`
	logger.DatabaseCall("loadRentals", query)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("loadRentals", 0, err)
		return fmt.Errorf("failed to load rentals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rental     domain.Rental
			start, end time.Time
		)
		if err := rows.Scan(&rental.ID, &rental.CarID, &start, &end, &rental.Distance); err != nil {
			return fmt.Errorf("failed to scan rental: %w", err)
		}
		rental.StartDate = start.Format("2006-01-02")
		rental.EndDate = end.Format("2006-01-02")
		ds.Rentals = append(ds.Rentals, rental)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read rentals: %w", err)
	}
	logger.DatabaseResult("loadRentals", int64(len(ds.Rentals)), nil)
	return nil
}

func (r *datasetRepository) loadModifications(ctx context.Context, ds *domain.Dataset) error {
	query := `SELECT id, rental_id, start_date, end_date, distance FROM rental_modifications ORDER BY id`
	logger.DatabaseCall("loadModifications", query)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("loadModifications", 0, err)
		return fmt.Errorf("failed to load rental modifications: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			m          domain.RentalModification
			start, end sql.NullTime
			distance   sql.NullInt64
		)
		if err := rows.Scan(&m.ID, &m.RentalID, &start, &end, &distance); err != nil {
			return fmt.Errorf("failed to scan rental modification: %w", err)
		}
		if start.Valid {
			s := start.Time.Format("2006-01-02")
			m.StartDate = &s
		}
		if end.Valid {
			e := end.Time.Format("2006-01-02")
			m.EndDate = &e
		}
		if distance.Valid {
			d := int(distance.Int64)
			m.Distance = &d
		}
		ds.RentalModifications = append(ds.RentalModifications, m)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read rental modifications: %w", err)
	}
	logger.DatabaseResult("loadModifications", int64(len(ds.RentalModifications)), nil)
	return nil
}
