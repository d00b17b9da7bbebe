package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainproperty "staybook/internal/domain/property"
	domainrange "staybook/internal/domain/shared/daterange"
)

type PropertyRepository struct {
	col *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{col: db.Collection("properties")}
}

func (r *PropertyRepository) ByID(ctx context.Context, id string) (*domainproperty.Property, error) {
	var doc propertyDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainproperty.ErrNotFound
		}
		return nil, err
	}
	return doc.toAggregate(), nil
}

func (r *PropertyRepository) Save(ctx context.Context, prop *domainproperty.Property) error {
	doc := newPropertyDocument(prop)
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": doc.ID}, update, opts)
	return err
}

// Booking references are embedded in the property document so a loaded
// property always carries the history its availability scan depends on.
type propertyDocument struct {
	ID                string               `bson:"_id"`
	Name              string               `bson:"name"`
	Description       string               `bson:"description"`
	MaxGuests         int                  `bson:"max_guests"`
	BasePricePerNight float64              `bson:"base_price_per_night"`
	Bookings          []bookingRefDocument `bson:"bookings"`
}

type bookingRefDocument struct {
	ID    string        `bson:"id"`
	Range rangeDocument `bson:"range"`
}

type rangeDocument struct {
	Start int64 `bson:"start"`
	End   int64 `bson:"end"`
}

func newPropertyDocument(prop *domainproperty.Property) propertyDocument {
	refs := make([]bookingRefDocument, 0, len(prop.Bookings))
	for _, ref := range prop.Bookings {
		refs = append(refs, bookingRefDocument{
			ID:    ref.ID,
			Range: newRangeDocument(ref.Range),
		})
	}
	return propertyDocument{
		ID:                prop.ID,
		Name:              prop.Name,
		Description:       prop.Description,
		MaxGuests:         prop.MaxGuests,
		BasePricePerNight: prop.BasePricePerNight,
		Bookings:          refs,
	}
}

func (d propertyDocument) toAggregate() *domainproperty.Property {
	prop := &domainproperty.Property{
		ID:                d.ID,
		Name:              d.Name,
		Description:       d.Description,
		MaxGuests:         d.MaxGuests,
		BasePricePerNight: d.BasePricePerNight,
	}
	for _, ref := range d.Bookings {
		prop.AddBooking(domainproperty.BookingRef{ID: ref.ID, Range: ref.Range.toRange()})
	}
	return prop
}

func newRangeDocument(dr domainrange.DateRange) rangeDocument {
	return rangeDocument{Start: dr.Start.UnixMilli(), End: dr.End.UnixMilli()}
}

func (d rangeDocument) toRange() domainrange.DateRange {
	return domainrange.DateRange{Start: timestampToTime(d.Start), End: timestampToTime(d.End)}
}

func timestampToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
