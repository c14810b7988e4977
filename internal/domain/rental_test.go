package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRental_DurationDays(t *testing.T) {
	t.Run("Two day span", func(t *testing.T) {
		r := Rental{ID: 1, StartDate: "2015-12-8", EndDate: "2015-12-10"}
		days, err := r.DurationDays()
		assert.NoError(t, err)
		assert.Equal(t, 2, days)
	})

	t.Run("Same day rental counts as zero days", func(t *testing.T) {
		r := Rental{ID: 1, StartDate: "2015-12-8", EndDate: "2015-12-8"}
		days, err := r.DurationDays()
		assert.NoError(t, err)
		assert.Equal(t, 0, days)
	})

	t.Run("Zero padded dates", func(t *testing.T) {
		r := Rental{ID: 1, StartDate: "2015-03-31", EndDate: "2015-04-01"}
		days, err := r.DurationDays()
		assert.NoError(t, err)
		assert.Equal(t, 1, days)
	})

	t.Run("Cross year boundary", func(t *testing.T) {
		r := Rental{ID: 1, StartDate: "2015-12-30", EndDate: "2016-01-02"}
		days, err := r.DurationDays()
		assert.NoError(t, err)
		assert.Equal(t, 3, days)
	})

	t.Run("Invalid start date", func(t *testing.T) {
		r := Rental{ID: 7, StartDate: "not-a-date", EndDate: "2015-12-10"}
		_, err := r.DurationDays()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "rental 7")
		assert.Contains(t, err.Error(), "invalid start_date")
	})

	t.Run("End before start", func(t *testing.T) {
		r := Rental{ID: 7, StartDate: "2015-12-10", EndDate: "2015-12-8"}
		_, err := r.DurationDays()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "before start_date")
	})
}
