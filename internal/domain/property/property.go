package property

import (
	"context"
	"errors"
	"strings"

	"staybook/internal/domain/shared/daterange"
	"staybook/internal/domain/shared/validation"
)

var (
	ErrIDRequired          = validation.NewError("The property's id is required")
	ErrNameRequired        = validation.NewError("The property's name is required")
	ErrDescriptionRequired = validation.NewError("The property's description is required")
	ErrMaxGuestsInvalid    = validation.NewError("The maximum number of guests must be greater than zero")
	ErrNotFound            = errors.New("property: not found")
)

// BookingRef is the property-side view of an accepted booking: just enough to
// answer availability queries. Refs are never removed, so a cancelled booking
// keeps blocking its dates.
type BookingRef struct {
	ID    string
	Range daterange.DateRange
}

// Property owns the guest limit and the pricing policy, and indexes the
// bookings it has accepted.
type Property struct {
	ID                string
	Name              string
	Description       string
	MaxGuests         int
	BasePricePerNight float64
	Bookings          []BookingRef
}

func New(id, name, description string, maxGuests int, basePricePerNight float64) (*Property, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrIDRequired
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrDescriptionRequired
	}
	if maxGuests <= 0 {
		return nil, ErrMaxGuestsInvalid
	}
	return &Property{
		ID:                id,
		Name:              name,
		Description:       description,
		MaxGuests:         maxGuests,
		BasePricePerNight: basePricePerNight,
	}, nil
}

// ValidateGuestCount rejects counts above the limit. Non-positive counts are
// the booking's own invariant, not checked here.
func (p *Property) ValidateGuestCount(guestCount int) error {
	if guestCount > p.MaxGuests {
		return validation.Errorf("Number of guests exceeded. Maximum allowed: %d", p.MaxGuests)
	}
	return nil
}

// TotalPrice prices a stay at the nightly base rate, with 10% off for stays
// of seven nights or more.
func (p *Property) TotalPrice(dr daterange.DateRange) float64 {
	nights := dr.Nights()
	total := float64(nights) * p.BasePricePerNight
	if nights >= 7 {
		total *= 0.9
	}
	return total
}

// IsAvailable reports whether no accepted booking overlaps the range.
func (p *Property) IsAvailable(dr daterange.DateRange) bool {
	for _, ref := range p.Bookings {
		if ref.Range.Overlaps(dr) {
			return false
		}
	}
	return true
}

// AddBooking registers a booking reference. Called by the booking constructor
// once its validation has passed.
func (p *Property) AddBooking(ref BookingRef) {
	p.Bookings = append(p.Bookings, ref)
}

type Repository interface {
	ByID(ctx context.Context, id string) (*Property, error)
	Save(ctx context.Context, property *Property) error
}
