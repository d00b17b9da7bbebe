package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"staybook/internal/domain/property"
	"staybook/internal/domain/shared/daterange"
	"staybook/internal/domain/shared/events"
	"staybook/internal/domain/shared/validation"
	"staybook/internal/domain/user"
)

var (
	ErrIDRequired       = validation.NewError("Booking ID is required")
	ErrGuestsInvalid    = validation.NewError("The number of guests must be greater than zero")
	ErrUnavailable      = validation.NewError("The property is unavailable in the date range requested")
	ErrAlreadyCancelled = validation.NewError("This booking is already cancelled")
	ErrNotFound         = errors.New("booking: not found")
)

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

// Booking is the reservation aggregate root. All fields except Status and
// TotalPrice are immutable after construction; those two change only through
// Cancel.
type Booking struct {
	ID         string
	Property   *property.Property
	Guest      *user.User
	Range      daterange.DateRange
	Guests     int
	Status     Status
	TotalPrice float64
	events.Recorder
}

// New validates the reservation against the property's current state and, on
// success, registers its range with the property. A failed validation leaves
// the property untouched.
func New(id string, prop *property.Property, guest *user.User, dr daterange.DateRange, guests int) (*Booking, error) {
	b := &Booking{
		ID:         id,
		Property:   prop,
		Guest:      guest,
		Range:      dr,
		Guests:     guests,
		Status:     StatusConfirmed,
		TotalPrice: prop.TotalPrice(dr),
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	prop.AddBooking(property.BookingRef{ID: b.ID, Range: b.Range})
	b.Record(Created{
		BookingID:  b.ID,
		PropertyID: prop.ID,
		GuestID:    guest.ID,
		Range:      b.Range,
		Guests:     b.Guests,
		TotalPrice: b.TotalPrice,
		At:         time.Now().UTC(),
	})
	return b, nil
}

func (b *Booking) validate() error {
	if strings.TrimSpace(b.ID) == "" {
		return ErrIDRequired
	}
	if b.Guests <= 0 {
		return ErrGuestsInvalid
	}
	if err := b.Property.ValidateGuestCount(b.Guests); err != nil {
		return err
	}
	if !b.Property.IsAvailable(b.Range) {
		return ErrUnavailable
	}
	return nil
}

// Cancel moves the booking to CANCELLED and re-prices it to the amount the
// host retains, selected by how many days remain until check-in. The range
// stays registered on the property.
func (b *Booking) Cancel(currentDate time.Time) error {
	if b.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	days := daysUntil(b.Range.Start, currentDate)
	rule := RefundRuleFor(days)
	b.TotalPrice = rule.CalculateRefund(b.TotalPrice)
	b.Status = StatusCancelled
	b.Record(Cancelled{
		BookingID:      b.ID,
		PropertyID:     b.Property.ID,
		RetainedAmount: b.TotalPrice,
		At:             currentDate.UTC(),
	})
	return nil
}

// daysUntil rounds up, so any portion of a day still counts as a full day
// ahead of check-in. Negative when check-in has passed.
func daysUntil(checkIn, now time.Time) int {
	diff := checkIn.Sub(now).Milliseconds()
	days := diff / millisPerDay
	if diff%millisPerDay != 0 && diff > 0 {
		days++
	}
	return int(days)
}

const millisPerDay = 24 * 60 * 60 * 1000

type Repository interface {
	ByID(ctx context.Context, id string) (*Booking, error)
	Save(ctx context.Context, booking *Booking) error
}
