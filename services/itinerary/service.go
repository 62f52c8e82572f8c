package itinerary

import (
	"errors"
	"fmt"
	"time"

	tripRepo "voyago/database/repository/trip"
	"voyago/models"
	"voyago/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotTripOwner is returned when a caller edits a trip they do not own.
var ErrNotTripOwner = errors.New("trip does not belong to the acting user")

// ItineraryService defines the interface for editing a trip's destinations.
type ItineraryService interface {
	AddDestination(userID, tripID, city, country string, arrival, departure *time.Time) ([]models.Destination, error)
	RemoveDestination(userID, tripID string, index int) ([]models.Destination, error)
	ReorderDestinations(userID, tripID string, fromIndex, toIndex int) ([]models.Destination, error)
	UpdateDestinationDate(userID, tripID string, index int, field DateField, newDate time.Time) ([]models.Destination, error)
}

// DefaultItineraryService implements ItineraryService on top of the trip
// repository. All edits go through the sequencer so the persisted list is
// always fully re-validated, never a partially consistent intermediate.
type DefaultItineraryService struct {
	Repo tripRepo.TripRepository
}

func (s *DefaultItineraryService) AddDestination(userID, tripID, city, country string, arrival, departure *time.Time) ([]models.Destination, error) {
	trip, err := s.loadOwnedTrip(userID, tripID)
	if err != nil {
		return nil, err
	}

	dest := models.Destination{
		ID:      uuid.New().String(),
		City:    city,
		Country: country,
	}
	if arrival != nil {
		dest.ArrivalDate = *arrival
	}
	if departure != nil {
		dest.DepartureDate = *departure
	}

	updated := Add(trip.Destinations, boundsOf(trip), dest)
	return s.persist(trip, updated)
}

func (s *DefaultItineraryService) RemoveDestination(userID, tripID string, index int) ([]models.Destination, error) {
	trip, err := s.loadOwnedTrip(userID, tripID)
	if err != nil {
		return nil, err
	}
	updated := Remove(trip.Destinations, boundsOf(trip), index)
	return s.persist(trip, updated)
}

func (s *DefaultItineraryService) ReorderDestinations(userID, tripID string, fromIndex, toIndex int) ([]models.Destination, error) {
	trip, err := s.loadOwnedTrip(userID, tripID)
	if err != nil {
		return nil, err
	}
	updated := Reorder(trip.Destinations, boundsOf(trip), fromIndex, toIndex)
	return s.persist(trip, updated)
}

func (s *DefaultItineraryService) UpdateDestinationDate(userID, tripID string, index int, field DateField, newDate time.Time) ([]models.Destination, error) {
	trip, err := s.loadOwnedTrip(userID, tripID)
	if err != nil {
		return nil, err
	}
	updated := UpdateDate(trip.Destinations, boundsOf(trip), index, field, newDate)
	return s.persist(trip, updated)
}

func (s *DefaultItineraryService) loadOwnedTrip(userID, tripID string) (*models.Trip, error) {
	trip, err := s.Repo.GetByID(tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trip: %w", err)
	}
	if trip.UserID != userID {
		return nil, ErrNotTripOwner
	}
	return trip, nil
}

func (s *DefaultItineraryService) persist(trip *models.Trip, destinations []models.Destination) ([]models.Destination, error) {
	if err := s.Repo.SetDestinations(trip.ID, destinations); err != nil {
		return nil, fmt.Errorf("failed to persist destinations: %w", err)
	}
	logger := utils.GetLogger()
	logger.Debug("itinerary updated",
		zap.String("tripID", trip.ID),
		zap.Int("destinations", len(destinations)))
	return destinations, nil
}

func boundsOf(trip *models.Trip) Bounds {
	return Bounds{Start: trip.StartDate, End: trip.EndDate}
}
