package bookings

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"staybook/internal/app/dto"
	"staybook/internal/domain/booking"
	"staybook/internal/domain/property"
	"staybook/internal/domain/shared/daterange"
	"staybook/internal/domain/shared/events"
	"staybook/internal/domain/user"
)

// EventPublisher delivers drained domain events to the broker. Publish
// failures must not fail the request; the service logs and moves on.
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}

// Service orchestrates booking creation and cancellation: it loads the
// aggregates, delegates every invariant to the domain, persists the result
// and publishes the recorded events.
type Service struct {
	Bookings   booking.Repository
	Properties property.Repository
	Users      user.Repository
	Publisher  EventPublisher
	Logger     *slog.Logger
}

func NewService(bookings booking.Repository, properties property.Repository, guests user.Repository, publisher EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		Bookings:   bookings,
		Properties: properties,
		Users:      guests,
		Publisher:  publisher,
		Logger:     logger,
	}
}

func (s *Service) Create(ctx context.Context, req dto.CreateBookingRequest) (*booking.Booking, error) {
	prop, err := s.Properties.ByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	guest, err := s.Users.ByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	dr, err := daterange.New(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	b, err := booking.New(uuid.NewString(), prop, guest, dr, req.GuestCount)
	if err != nil {
		return nil, err
	}

	if err := s.Bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	// The property gained a booking reference; persist it so the
	// availability scan survives a reload.
	if err := s.Properties.Save(ctx, prop); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, b)
	return b, nil
}

func (s *Service) Cancel(ctx context.Context, id string, now time.Time) (*booking.Booking, error) {
	b, err := s.Bookings.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := b.Cancel(now); err != nil {
		return nil, err
	}
	if err := s.Bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, b)
	return b, nil
}

func (s *Service) ByID(ctx context.Context, id string) (*booking.Booking, error) {
	return s.Bookings.ByID(ctx, id)
}

func (s *Service) publishEvents(ctx context.Context, b *booking.Booking) {
	if s.Publisher == nil {
		b.ClearEvents()
		return
	}
	for _, event := range b.PendingEvents() {
		if err := s.Publisher.Publish(ctx, event); err != nil && s.Logger != nil {
			s.Logger.Warn("event publish failed", "event", event.EventName(), "booking_id", event.AggregateID(), "error", err)
		}
	}
	b.ClearEvents()
}
