package domain

// RentalModification amends a rental after booking. Nil fields leave the
// rental's current value in place; id and car_id can never be amended.
type RentalModification struct {
	ID        int     `json:"id"`
	RentalID  int     `json:"rental_id"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Distance  *int    `json:"distance,omitempty"`
}
