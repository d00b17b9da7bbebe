package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainbooking "staybook/internal/domain/booking"
)

// BookingRepository persists bookings and rebuilds the aggregate together
// with the property and guest it references.
type BookingRepository struct {
	col        *mongo.Collection
	properties *PropertyRepository
	users      *UserRepository
}

func NewBookingRepository(db *mongo.Database, properties *PropertyRepository, users *UserRepository) *BookingRepository {
	return &BookingRepository{
		col:        db.Collection("bookings"),
		properties: properties,
		users:      users,
	}
}

func (r *BookingRepository) ByID(ctx context.Context, id string) (*domainbooking.Booking, error) {
	var doc bookingDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainbooking.ErrNotFound
		}
		return nil, err
	}
	return r.toAggregate(ctx, doc)
}

func (r *BookingRepository) Save(ctx context.Context, b *domainbooking.Booking) error {
	doc := newBookingDocument(b)
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": doc.ID}, bson.M{"$set": doc}, opts)
	return err
}

type bookingDocument struct {
	ID         string        `bson:"_id"`
	PropertyID string        `bson:"property_id"`
	GuestID    string        `bson:"guest_id"`
	Range      rangeDocument `bson:"range"`
	Guests     int           `bson:"guests"`
	Status     string        `bson:"status"`
	TotalPrice float64       `bson:"total_price"`
}

func newBookingDocument(b *domainbooking.Booking) bookingDocument {
	return bookingDocument{
		ID:         b.ID,
		PropertyID: b.Property.ID,
		GuestID:    b.Guest.ID,
		Range:      newRangeDocument(b.Range),
		Guests:     b.Guests,
		Status:     string(b.Status),
		TotalPrice: b.TotalPrice,
	}
}

func (r *BookingRepository) toAggregate(ctx context.Context, d bookingDocument) (*domainbooking.Booking, error) {
	prop, err := r.properties.ByID(ctx, d.PropertyID)
	if err != nil {
		return nil, err
	}
	guest, err := r.users.ByID(ctx, d.GuestID)
	if err != nil {
		return nil, err
	}
	// Rebuilt directly: the invariants were enforced when the booking was
	// first constructed.
	return &domainbooking.Booking{
		ID:         d.ID,
		Property:   prop,
		Guest:      guest,
		Range:      d.Range.toRange(),
		Guests:     d.Guests,
		Status:     domainbooking.Status(d.Status),
		TotalPrice: d.TotalPrice,
	}, nil
}
