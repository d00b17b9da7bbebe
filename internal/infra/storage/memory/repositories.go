package memory

import (
	"context"
	"sync"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/property"
	"staybook/internal/domain/user"
)

// PropertyRepository is an in-memory implementation backed by a map. It keeps
// the live aggregate instances, so a property's booking references stay
// visible to every caller holding the same repository.
type PropertyRepository struct {
	mu    sync.RWMutex
	items map[string]*property.Property
}

func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{items: make(map[string]*property.Property)}
}

func (r *PropertyRepository) ByID(ctx context.Context, id string) (*property.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	prop, ok := r.items[id]
	if !ok {
		return nil, property.ErrNotFound
	}
	return prop, nil
}

func (r *PropertyRepository) Save(ctx context.Context, prop *property.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[prop.ID] = prop
	return nil
}

// UserRepository stores guests in memory.
type UserRepository struct {
	mu    sync.RWMutex
	items map[string]*user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{items: make(map[string]*user.User)}
}

func (r *UserRepository) ByID(ctx context.Context, id string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	guest, ok := r.items[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return guest, nil
}

func (r *UserRepository) Save(ctx context.Context, guest *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[guest.ID] = guest
	return nil
}

// BookingRepository stores bookings in memory.
type BookingRepository struct {
	mu    sync.RWMutex
	items map[string]*booking.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{items: make(map[string]*booking.Booking)}
}

func (r *BookingRepository) ByID(ctx context.Context, id string) (*booking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.items[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	return b, nil
}

func (r *BookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[b.ID] = b
	return nil
}
