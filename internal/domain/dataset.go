package domain

// Dataset is the raw input document: the three named collections, in the
// order the source listed them.
type Dataset struct {
	Cars                []Car                `json:"cars"`
	Rentals             []Rental             `json:"rentals"`
	RentalModifications []RentalModification `json:"rental_modifications,omitempty"`
}
