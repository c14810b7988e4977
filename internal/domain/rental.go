package domain

import (
	"fmt"
	"time"
)

// DateLayout accepts ISO-8601 calendar dates with or without zero padding
// ("2015-12-08" and "2015-12-8" both appear in historical datasets).
const DateLayout = "2006-1-2"

type Rental struct {
	ID        int    `json:"id"`
	CarID     int    `json:"car_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Distance  int    `json:"distance"` // kilometers
}

// DurationDays returns the day span between start and end dates.
// A same-day rental counts as 0 days; that is how every historical billing
// run priced them, so it stays that way.
func (r Rental) DurationDays() (int, error) {
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return 0, fmt.Errorf("rental %d: invalid start_date %q: %w", r.ID, r.StartDate, err)
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return 0, fmt.Errorf("rental %d: invalid end_date %q: %w", r.ID, r.EndDate, err)
	}
	if end.Before(start) {
		return 0, fmt.Errorf("rental %d: end_date %s before start_date %s", r.ID, r.EndDate, r.StartDate)
	}
	return int(end.Sub(start).Hours() / 24), nil
}
