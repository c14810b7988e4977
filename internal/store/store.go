package store

import (
	"errors"
	"fmt"

	"rental-billing-batch/internal/domain"
)

var (
	// ErrNotFound reports a reference to a record that does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrMalformedRecord reports a record missing a required field.
	ErrMalformedRecord = errors.New("malformed record")
)

// Store holds the loaded dataset indexed by id. It is built once at startup
// and read-only for the rest of the run; every component that needs lookups
// receives it explicitly.
type Store struct {
	cars    map[int]domain.Car
	rentals map[int]domain.Rental
	mods    map[int][]domain.RentalModification

	rentalList []domain.Rental
	modList    []domain.RentalModification
}

// New builds the store from a loaded dataset. On duplicate ids the first
// occurrence wins, matching first-match scan semantics. A record missing a
// required field fails the whole build: silent defaults would corrupt every
// figure computed downstream.
func New(ds *domain.Dataset) (*Store, error) {
	s := &Store{
		cars:       make(map[int]domain.Car, len(ds.Cars)),
		rentals:    make(map[int]domain.Rental, len(ds.Rentals)),
		mods:       make(map[int][]domain.RentalModification, len(ds.RentalModifications)),
		rentalList: ds.Rentals,
		modList:    ds.RentalModifications,
	}

	for _, c := range ds.Cars {
		if _, dup := s.cars[c.ID]; dup {
			continue
		}
		s.cars[c.ID] = c
	}

	for _, r := range ds.Rentals {
		if r.StartDate == "" || r.EndDate == "" {
			return nil, fmt.Errorf("rental %d: missing rental period: %w", r.ID, ErrMalformedRecord)
		}
		if r.Distance < 0 {
			return nil, fmt.Errorf("rental %d: negative distance %d: %w", r.ID, r.Distance, ErrMalformedRecord)
		}
		if _, dup := s.rentals[r.ID]; dup {
			continue
		}
		s.rentals[r.ID] = r
	}

	for _, m := range ds.RentalModifications {
		s.mods[m.RentalID] = append(s.mods[m.RentalID], m)
	}

	return s, nil
}

func (s *Store) CarByID(id int) (domain.Car, error) {
	car, ok := s.cars[id]
	if !ok {
		return domain.Car{}, fmt.Errorf("car %d: %w", id, ErrNotFound)
	}
	return car, nil
}

func (s *Store) RentalByID(id int) (domain.Rental, error) {
	rental, ok := s.rentals[id]
	if !ok {
		return domain.Rental{}, fmt.Errorf("rental %d: %w", id, ErrNotFound)
	}
	return rental, nil
}

// ModificationsFor returns the modifications targeting a rental, in the
// order the dataset listed them.
func (s *Store) ModificationsFor(rentalID int) []domain.RentalModification {
	return s.mods[rentalID]
}

// Rentals returns all rentals in dataset order.
func (s *Store) Rentals() []domain.Rental {
	return s.rentalList
}

// Modifications returns all modification records in dataset order.
func (s *Store) Modifications() []domain.RentalModification {
	return s.modList
}
