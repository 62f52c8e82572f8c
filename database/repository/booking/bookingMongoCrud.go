// File: database/repository/booking/bookingMongoCrud.go
package bookingRepo

import (
	"fmt"
	"time"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertConfirmed inserts or updates the booking row keyed on
// (trip_id, resource_type, resource_id). A retried confirmation with the same
// payment intent lands on the same row; the unique index makes a concurrent
// double insert impossible.
func (r *MongoBookingRepo) UpsertConfirmed(booking *models.Booking) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{
		"trip_id":       booking.TripID,
		"resource_type": booking.ResourceType,
		"resource_id":   booking.ResourceID,
	}
	update := bson.M{
		"$set": bson.M{
			"payment_intent_id": booking.PaymentIntentID,
			"amount":            booking.Amount,
			"currency":          booking.Currency,
			"start_date":        booking.StartDate,
			"end_date":          booking.EndDate,
			"status":            models.BookingStatusConfirmed,
			"updated_at":        now,
		},
		"$setOnInsert": bson.M{
			"id":            booking.ID,
			"trip_id":       booking.TripID,
			"resource_type": booking.ResourceType,
			"resource_id":   booking.ResourceID,
			"created_at":    now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.Booking
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, fmt.Errorf("failed to upsert booking for trip %s: %w", booking.TripID, err)
	}
	return &stored, nil
}

// GetByResource retrieves the booking for one (trip, resource) pair.
func (r *MongoBookingRepo) GetByResource(tripID string, resourceType models.ResourceType, resourceID string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"trip_id":       tripID,
		"resource_type": resourceType,
		"resource_id":   resourceID,
	}

	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking for trip %s not found", tripID)
		}
		return nil, fmt.Errorf("failed to fetch booking for trip %s: %w", tripID, err)
	}
	return &booking, nil
}

// ListByTrip returns all bookings belonging to a trip.
func (r *MongoBookingRepo) ListByTrip(tripID string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for trip %s: %w", tripID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings for trip %s: %w", tripID, err)
	}
	return bookings, nil
}
