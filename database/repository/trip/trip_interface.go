package tripRepo

import "voyago/models"

// TripRepository defines persistence for trips and their itineraries.
type TripRepository interface {
	Create(trip *models.Trip) error
	GetByID(id string) (*models.Trip, error)
	Update(trip *models.Trip) error
	Delete(id string) error

	// SetDestinations replaces the trip's ordered destination list.
	SetDestinations(id string, destinations []models.Destination) error
	// SetSimulation replaces the trip's cost simulation wholesale.
	SetSimulation(id string, sim *models.CostSimulation) error
	// SetSelection persists the chosen flight/hotel option ids and status.
	SetSelection(id string, flightID, hotelID *string, status models.TripStatus) error
}
