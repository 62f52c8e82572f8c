package models

import "time"

// TripStatus tracks where a trip sits in the planning funnel.
type TripStatus string

const (
	TripStatusDraft     TripStatus = "draft"
	TripStatusPlanning  TripStatus = "planning"
	TripStatusConfirmed TripStatus = "confirmed"
)

// Trip represents a multi-stop trip assembled by a traveler.
type Trip struct {
	ID               string          `bson:"id" json:"id"`                 // Unique trip identifier (UUID)
	UserID           string          `bson:"user_id" json:"userId"`        // Owning traveler
	Name             string          `bson:"name" json:"name"`             // Display name, e.g. "Summer in Europe"
	Destinations     []Destination   `bson:"destinations" json:"destinations"`
	StartDate        *time.Time      `bson:"start_date,omitempty" json:"startDate,omitempty"`
	EndDate          *time.Time      `bson:"end_date,omitempty" json:"endDate,omitempty"`
	Budget           float64         `bson:"budget" json:"budget"`
	Currency         string          `bson:"currency" json:"currency"`
	Status           TripStatus      `bson:"status" json:"status"`
	Simulation       *CostSimulation `bson:"simulation_result,omitempty" json:"simulationResult,omitempty"` // Last cost simulation, replaced wholesale
	SelectedFlightID *string         `bson:"selected_flight_id,omitempty" json:"selectedFlightId,omitempty"`
	SelectedHotelID  *string         `bson:"selected_hotel_id,omitempty" json:"selectedHotelId,omitempty"`
	CreatedAt        time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time       `bson:"updated_at" json:"updatedAt"`
}

// Destination is one stop in a multi-city trip, with its own stay window.
// OrderIndex is 0-based and contiguous within a trip.
type Destination struct {
	ID            string    `bson:"id" json:"id"`
	City          string    `bson:"city" json:"city"`
	Country       string    `bson:"country" json:"country"`
	ArrivalDate   time.Time `bson:"arrival_date" json:"arrivalDate"`
	DepartureDate time.Time `bson:"departure_date" json:"departureDate"`
	OrderIndex    int       `bson:"order_index" json:"orderIndex"`
}

// Nights returns the stay length in whole days.
func (d Destination) Nights() int {
	return int(d.DepartureDate.Sub(d.ArrivalDate).Hours() / 24)
}
