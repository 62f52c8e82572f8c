package trip

import (
	"errors"
	"fmt"
	"time"

	tripRepo "voyago/database/repository/trip"
	"voyago/models"

	"github.com/google/uuid"
)

var (
	// ErrNotTripOwner is returned when a caller acts on a trip they do not own.
	ErrNotTripOwner = errors.New("trip does not belong to the acting user")
	// ErrInvalidTripDates flags a trip window whose end precedes its start.
	ErrInvalidTripDates = errors.New("trip end date is before its start date")
	// ErrUnknownSelection flags a selected option id absent from the trip's
	// current simulation.
	ErrUnknownSelection = errors.New("selected option is not part of the current simulation")
)

// TripService defines trip-level operations: creation, reads, and persisting
// the traveler's chosen flight/hotel options.
type TripService interface {
	CreateTrip(userID, name string, start, end *time.Time, budget float64, currency string) (*models.Trip, error)
	GetTrip(userID, tripID string) (*models.Trip, error)
	SelectOptions(userID, tripID string, flightID, hotelID *string) (*models.Trip, error)
}

// DefaultTripService implements TripService.
type DefaultTripService struct {
	Repo tripRepo.TripRepository
}

func (s *DefaultTripService) CreateTrip(userID, name string, start, end *time.Time, budget float64, currency string) (*models.Trip, error) {
	if start != nil && end != nil && end.Before(*start) {
		return nil, ErrInvalidTripDates
	}

	trip := &models.Trip{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         name,
		Destinations: []models.Destination{},
		StartDate:    start,
		EndDate:      end,
		Budget:       budget,
		Currency:     currency,
		Status:       models.TripStatusDraft,
	}
	if err := s.Repo.Create(trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}
	return trip, nil
}

func (s *DefaultTripService) GetTrip(userID, tripID string) (*models.Trip, error) {
	trip, err := s.Repo.GetByID(tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trip: %w", err)
	}
	if trip.UserID != userID {
		return nil, ErrNotTripOwner
	}
	return trip, nil
}

// SelectOptions persists the chosen flight/hotel option ids. Selections must
// reference the trip's current simulation; a draft trip moves to planning on
// its first selection.
func (s *DefaultTripService) SelectOptions(userID, tripID string, flightID, hotelID *string) (*models.Trip, error) {
	trip, err := s.GetTrip(userID, tripID)
	if err != nil {
		return nil, err
	}

	if flightID != nil && !simulationHasFlight(trip.Simulation, *flightID) {
		return nil, ErrUnknownSelection
	}
	if hotelID != nil && !simulationHasHotel(trip.Simulation, *hotelID) {
		return nil, ErrUnknownSelection
	}

	status := trip.Status
	if status == models.TripStatusDraft {
		status = models.TripStatusPlanning
	}
	if err := s.Repo.SetSelection(trip.ID, flightID, hotelID, status); err != nil {
		return nil, fmt.Errorf("failed to persist selection: %w", err)
	}

	if flightID != nil {
		trip.SelectedFlightID = flightID
	}
	if hotelID != nil {
		trip.SelectedHotelID = hotelID
	}
	trip.Status = status
	return trip, nil
}

func simulationHasFlight(sim *models.CostSimulation, id string) bool {
	if sim == nil {
		return false
	}
	for _, f := range sim.FlightOptions {
		if f.ID == id {
			return true
		}
	}
	return false
}

func simulationHasHotel(sim *models.CostSimulation, id string) bool {
	if sim == nil {
		return false
	}
	for _, h := range sim.HotelOptions {
		if h.ID == id {
			return true
		}
	}
	return false
}
