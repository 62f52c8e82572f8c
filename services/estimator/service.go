package estimator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"voyago/config"
	tripRepo "voyago/database/repository/trip"
	"voyago/models"
	"voyago/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// simulationTTL bounds how long a cached snapshot stays quotable.
const simulationTTL = 30 * time.Minute

var (
	// ErrMalformedDate flags an unparsable departure or return date.
	ErrMalformedDate = errors.New("malformed date")
	// ErrInvalidDateRange flags a return date on or before the departure.
	ErrInvalidDateRange = errors.New("returnDate must be after departureDate")
	// ErrNotTripOwner is returned when a caller simulates a trip they do not own.
	ErrNotTripOwner = errors.New("trip does not belong to the acting user")
)

// SimulationService runs cost simulations and attaches them to trips.
type SimulationService interface {
	Simulate(userID, tripID string, req models.CostSimulationRequest) (*models.CostSimulation, error)
}

// DefaultSimulationService implements SimulationService. The priced snapshot
// is persisted on the trip (replacing any previous one) and cached in Redis
// so repeat reads within the TTL skip regeneration.
type DefaultSimulationService struct {
	Estimator   *Estimator
	TripRepo    tripRepo.TripRepository
	CacheClient *redis.Client
}

func (s *DefaultSimulationService) Simulate(userID, tripID string, req models.CostSimulationRequest) (*models.CostSimulation, error) {
	departure, err := time.Parse(dateLayout, req.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("departureDate %q: %w", req.DepartureDate, ErrMalformedDate)
	}
	returnDate, err := time.Parse(dateLayout, req.ReturnDate)
	if err != nil {
		return nil, fmt.Errorf("returnDate %q: %w", req.ReturnDate, ErrMalformedDate)
	}
	if !returnDate.After(departure) {
		return nil, ErrInvalidDateRange
	}

	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trip: %w", err)
	}
	if trip.UserID != userID {
		return nil, ErrNotTripOwner
	}

	flights := s.Estimator.FlightOptions(req.Origin, req.Destination, departure, returnDate)
	hotels := s.Estimator.HotelOptions(req.Destination, departure, returnDate)
	attractions := s.Estimator.Attractions(req.Destination, req.Interests)
	nights := Nights(departure, returnDate)

	currency := trip.Currency
	if currency == "" {
		currency = config.AppConfig.DefaultCurrency
	}

	sim := &models.CostSimulation{
		FlightOptions: flights,
		HotelOptions:  hotels,
		Attractions:   attractions,
		TotalEstimate: s.Estimator.TotalEstimate(flights, hotels, attractions, nights),
		Currency:      currency,
		GeneratedAt:   time.Now(),
	}

	if err := s.TripRepo.SetSimulation(trip.ID, sim); err != nil {
		return nil, fmt.Errorf("failed to attach simulation to trip: %w", err)
	}
	s.cacheSnapshot(trip.ID, sim)

	return sim, nil
}

// cacheSnapshot is best effort; a cache miss only costs a regeneration.
func (s *DefaultSimulationService) cacheSnapshot(tripID string, sim *models.CostSimulation) {
	if s.CacheClient == nil {
		return
	}
	logger := utils.GetLogger()

	data, err := json.Marshal(sim)
	if err != nil {
		logger.Warn("failed to marshal simulation for cache", zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.CacheClient.Set(ctx, simulationCacheKey(tripID), data, simulationTTL).Err(); err != nil {
		logger.Warn("failed to cache simulation", zap.String("tripID", tripID), zap.Error(err))
	}
}

func simulationCacheKey(tripID string) string {
	return "simulation:" + tripID
}
