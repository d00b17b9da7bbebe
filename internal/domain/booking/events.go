package booking

import (
	"time"

	"staybook/internal/domain/shared/daterange"
)

type Created struct {
	BookingID  string              `json:"booking_id"`
	PropertyID string              `json:"property_id"`
	GuestID    string              `json:"guest_id"`
	Range      daterange.DateRange `json:"range"`
	Guests     int                 `json:"guests"`
	TotalPrice float64             `json:"total_price"`
	At         time.Time           `json:"at"`
}

func (e Created) EventName() string     { return "booking.created" }
func (e Created) AggregateID() string   { return e.BookingID }
func (e Created) OccurredAt() time.Time { return e.At }

type Cancelled struct {
	BookingID      string    `json:"booking_id"`
	PropertyID     string    `json:"property_id"`
	RetainedAmount float64   `json:"retained_amount"`
	At             time.Time `json:"at"`
}

func (e Cancelled) EventName() string     { return "booking.cancelled" }
func (e Cancelled) AggregateID() string   { return e.BookingID }
func (e Cancelled) OccurredAt() time.Time { return e.At }
