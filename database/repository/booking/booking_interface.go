package bookingRepo

import "voyago/models"

// BookingRepository defines persistence for confirmed bookings.
//
// The at-most-one guarantee per (trip, resource type, resource id) rests on a
// unique compound index plus upsert semantics, not on in-process locking:
// the real contention is across requests and processes.
type BookingRepository interface {
	// UpsertConfirmed inserts the booking if absent or updates the existing
	// row in place, keyed on (trip_id, resource_type, resource_id). It never
	// creates a second row for the same key.
	UpsertConfirmed(booking *models.Booking) (*models.Booking, error)

	GetByResource(tripID string, resourceType models.ResourceType, resourceID string) (*models.Booking, error)
	ListByTrip(tripID string) ([]models.Booking, error)
}
