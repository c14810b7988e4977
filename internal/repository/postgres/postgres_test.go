package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestDatasetRepository_LoadDataset(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewDatasetRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, price_per_day, price_per_km FROM cars").
			WillReturnRows(sqlmock.NewRows([]string{"id", "price_per_day", "price_per_km"}).
				AddRow(1, 2000, 10).
				AddRow(2, 3000, 15))

		mock.ExpectQuery("SELECT id, car_id, start_date, end_date, distance FROM rentals").
			WillReturnRows(sqlmock.NewRows([]string{"id", "car_id", "start_date", "end_date", "distance"}).
				AddRow(1, 1,
					time.Date(2015, 12, 8, 0, 0, 0, 0, time.UTC),
					time.Date(2015, 12, 10, 0, 0, 0, 0, time.UTC),
					100))

		mock.ExpectQuery("SELECT id, rental_id, start_date, end_date, distance FROM rental_modifications").
			WillReturnRows(sqlmock.NewRows([]string{"id", "rental_id", "start_date", "end_date", "distance"}).
				AddRow(1, 1, nil, time.Date(2015, 12, 15, 0, 0, 0, 0, time.UTC), nil).
				AddRow(2, 1, nil, nil, 1500))

		ds, err := repo.LoadDataset(ctx)
		assert.NoError(t, err)

		assert.Len(t, ds.Cars, 2)
		assert.Equal(t, 2000, ds.Cars[0].PricePerDay)

		assert.Len(t, ds.Rentals, 1)
		assert.Equal(t, "2015-12-08", ds.Rentals[0].StartDate)
		assert.Equal(t, "2015-12-10", ds.Rentals[0].EndDate)
		assert.Equal(t, 100, ds.Rentals[0].Distance)

		assert.Len(t, ds.RentalModifications, 2)
		first := ds.RentalModifications[0]
		assert.Nil(t, first.StartDate)
		assert.Nil(t, first.Distance)
		if assert.NotNil(t, first.EndDate) {
			assert.Equal(t, "2015-12-15", *first.EndDate)
		}
		second := ds.RentalModifications[1]
		assert.Nil(t, second.StartDate)
		assert.Nil(t, second.EndDate)
		if assert.NotNil(t, second.Distance) {
			assert.Equal(t, 1500, *second.Distance)
		}

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Query failure surfaces", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, price_per_day, price_per_km FROM cars").
			WillReturnError(assert.AnError)

		_, err := repo.LoadDataset(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load cars")
	})
}
