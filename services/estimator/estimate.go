package estimator

import (
	"math"
	"sort"
	"strings"
	"time"

	"voyago/models"
)

// Daily-cost defaults, used when the estimator is built without overrides.
const (
	DefaultFoodPerMeal     = 30.0
	DefaultTransportPerDay = 45.0
)

const (
	mealsPerDay    = 3
	minAttractions = 3
	maxAttractions = 6
	safetyMargin   = 1.10
)

// Estimator aggregates provider options into a single budget estimate. It is
// pure and side-effect free; the numeric policy here (sort orders, ceil on
// nights, three meals a day, the flat 10% margin) is the stable contract the
// provider behind it may not change.
type Estimator struct {
	Provider        PricingProvider
	FoodPerMeal     float64
	TransportPerDay float64
}

// NewEstimator builds an Estimator with the default daily-cost rates.
func NewEstimator(provider PricingProvider) *Estimator {
	return &Estimator{
		Provider:        provider,
		FoodPerMeal:     DefaultFoodPerMeal,
		TransportPerDay: DefaultTransportPerDay,
	}
}

// Nights returns the stay length for a check-in/check-out pair, rounding any
// partial day up.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// FlightOptions returns the provider's flight candidates sorted ascending by
// price.
func (e *Estimator) FlightOptions(origin, destination string, departure, returnDate time.Time) []models.FlightOption {
	options := e.Provider.FlightOptions(origin, destination, departure, returnDate)
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Price < options[j].Price
	})
	return options
}

// HotelOptions returns the provider's hotel candidates with TotalPrice filled
// in for the stay, sorted ascending by price per night.
func (e *Estimator) HotelOptions(destination string, checkIn, checkOut time.Time) []models.HotelOption {
	nights := Nights(checkIn, checkOut)
	options := e.Provider.HotelOptions(destination, checkIn, checkOut)
	for i := range options {
		options[i].TotalPrice = options[i].PricePerNight * float64(nights)
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].PricePerNight < options[j].PricePerNight
	})
	return options
}

// Attractions returns one attraction per requested interest, deduplicated by
// category. When fewer than three result (including the no-interests case) it
// backfills one attraction per remaining known category until three are
// reached or categories run out. The result is capped at six.
func (e *Estimator) Attractions(destination string, interests []string) []models.Attraction {
	seen := make(map[string]bool)
	var result []models.Attraction

	appendCategory := func(category string) {
		if seen[category] || len(result) >= maxAttractions {
			return
		}
		if attraction, ok := e.Provider.AttractionFor(destination, category); ok {
			seen[category] = true
			result = append(result, attraction)
		}
	}

	for _, interest := range interests {
		appendCategory(strings.ToLower(strings.TrimSpace(interest)))
	}
	for _, category := range e.Provider.Categories() {
		if len(result) >= minAttractions {
			break
		}
		appendCategory(category)
	}
	return result
}

// TotalEstimate aggregates the cheapest flight, the cheapest hotel stay, all
// attractions and per-day food and transport into one number, then applies
// the 10% safety margin. Empty option sets contribute zero.
func (e *Estimator) TotalEstimate(flights []models.FlightOption, hotels []models.HotelOption, attractions []models.Attraction, nights int) float64 {
	subtotal := cheapestFlightPrice(flights) + cheapestHotelTotal(hotels)
	for _, attraction := range attractions {
		subtotal += attraction.Price
	}
	subtotal += float64(nights) * mealsPerDay * e.FoodPerMeal
	subtotal += float64(nights) * e.TransportPerDay

	return math.Round(subtotal * safetyMargin)
}

func cheapestFlightPrice(flights []models.FlightOption) float64 {
	if len(flights) == 0 {
		return 0
	}
	cheapest := flights[0]
	for _, f := range flights[1:] {
		if f.Price < cheapest.Price {
			cheapest = f
		}
	}
	return cheapest.Price
}

func cheapestHotelTotal(hotels []models.HotelOption) float64 {
	if len(hotels) == 0 {
		return 0
	}
	cheapest := hotels[0]
	for _, h := range hotels[1:] {
		if h.PricePerNight < cheapest.PricePerNight {
			cheapest = h
		}
	}
	return cheapest.TotalPrice
}
