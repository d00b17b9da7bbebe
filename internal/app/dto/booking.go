package dto

import (
	"time"

	"staybook/internal/domain/booking"
)

type CreateBookingRequest struct {
	PropertyID string    `json:"property_id"`
	UserID     string    `json:"user_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	GuestCount int       `json:"guest_count"`
}

type BookingResponse struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	GuestID    string    `json:"guest_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	GuestCount int       `json:"guest_count"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		PropertyID: b.Property.ID,
		GuestID:    b.Guest.ID,
		StartDate:  b.Range.Start,
		EndDate:    b.Range.End,
		GuestCount: b.Guests,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
	}
}
