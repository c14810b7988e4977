package domain

// Car is a listed vehicle with its pricing rates. Immutable once loaded.
type Car struct {
	ID          int `json:"id"`
	PricePerDay int `json:"price_per_day"` // minor units (cents)
	PricePerKm  int `json:"price_per_km"`  // minor units (cents)
}
