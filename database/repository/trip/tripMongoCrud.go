// File: database/repository/trip/tripMongoCrud.go
package tripRepo

import (
	"fmt"
	"time"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new trip document.
func (r *MongoTripRepo) Create(trip *models.Trip) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, trip)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

// GetByID retrieves a trip by its unique ID.
func (r *MongoTripRepo) GetByID(id string) (*models.Trip, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var trip models.Trip
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&trip)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("trip with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch trip with id %s: %w", id, err)
	}
	return &trip, nil
}

// Update modifies an existing trip document.
func (r *MongoTripRepo) Update(trip *models.Trip) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	trip.UpdatedAt = time.Now()
	filter := bson.M{"id": trip.ID}
	update := bson.M{"$set": trip}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update trip with id %s: %w", trip.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trip with id %s not found", trip.ID)
	}
	return nil
}

// Delete removes a trip document by its ID.
func (r *MongoTripRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete trip with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("trip with id %s not found", id)
	}
	return nil
}

// SetDestinations replaces the trip's ordered destination list.
func (r *MongoTripRepo) SetDestinations(id string, destinations []models.Destination) error {
	return r.setFields(id, bson.M{"destinations": destinations})
}

// SetSimulation replaces the trip's cost simulation wholesale. The previous
// snapshot is discarded, never patched.
func (r *MongoTripRepo) SetSimulation(id string, sim *models.CostSimulation) error {
	return r.setFields(id, bson.M{"simulation_result": sim})
}

// SetSelection persists the chosen flight/hotel option ids and trip status.
func (r *MongoTripRepo) SetSelection(id string, flightID, hotelID *string, status models.TripStatus) error {
	fields := bson.M{"status": status}
	if flightID != nil {
		fields["selected_flight_id"] = *flightID
	}
	if hotelID != nil {
		fields["selected_hotel_id"] = *hotelID
	}
	return r.setFields(id, fields)
}

func (r *MongoTripRepo) setFields(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updated_at"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update trip with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trip with id %s not found", id)
	}
	return nil
}
