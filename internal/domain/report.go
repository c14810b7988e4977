package domain

// Report document shapes, one per batch output mode. List order always
// matches the input dataset's iteration order.

type RentalPrice struct {
	ID    int `json:"id"`
	Price int `json:"price"`
}

// PriceReport is the flat price-only report, the oldest output shape still
// consumed by downstream tooling.
type PriceReport struct {
	Rentals []RentalPrice `json:"rentals"`
}

type RentalActions struct {
	ID      int      `json:"id"`
	Actions []Action `json:"actions"`
}

type RentalReport struct {
	Rentals []RentalActions `json:"rentals"`
}

type ModificationActions struct {
	ID       int      `json:"id"`
	RentalID int      `json:"rental_id"`
	Actions  []Action `json:"actions"`
}

type ModificationReport struct {
	RentalModifications []ModificationActions `json:"rental_modifications"`
}
