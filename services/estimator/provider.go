package estimator

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"

	"voyago/models"
)

// PricingProvider supplies raw priced options for a route and date range.
// The estimator owns the aggregation contract (sorting, totals, backfill);
// the provider only generates candidates, so tests can inject fixtures and a
// real fare API can replace the stand-in without touching the aggregation.
type PricingProvider interface {
	FlightOptions(origin, destination string, departure, returnDate time.Time) []models.FlightOption
	HotelOptions(destination string, checkIn, checkOut time.Time) []models.HotelOption
	// AttractionFor returns one representative attraction for a category, or
	// false when the category is unknown.
	AttractionFor(destination, category string) (models.Attraction, bool)
	// Categories lists the known interest categories, in a stable order.
	Categories() []string
}

// SeededPricingProvider is a deterministic stand-in for a real fare API: the
// same route and dates always yield the same options. Prices are plausible,
// not real.
type SeededPricingProvider struct{}

// NewSeededPricingProvider returns the default stand-in provider.
func NewSeededPricingProvider() *SeededPricingProvider {
	return &SeededPricingProvider{}
}

var airlines = []string{"Lufthansa", "Air France", "KLM", "Iberia", "Turkish Airlines", "Emirates", "Delta", "United"}

var hotelNames = []string{"Grand Plaza", "City Central", "Riverside Inn", "The Meridian", "Old Town Suites", "Harbor View", "Park Residence"}

var hotelAmenities = []string{"wifi", "breakfast", "pool", "gym", "spa", "parking", "bar"}

// attractionCatalog holds one representative attraction name per category.
var attractionCatalog = map[string]string{
	"museums":   "National Museum",
	"history":   "Old Town Walking Tour",
	"art":       "Modern Art Gallery",
	"nature":    "Botanical Gardens",
	"food":      "Street Food Tour",
	"nightlife": "Rooftop Bar Crawl",
	"adventure": "River Kayak Trip",
	"shopping":  "Central Market",
}

// categoryOrder keeps backfill deterministic; map iteration order is not.
var categoryOrder = []string{"museums", "history", "art", "nature", "food", "nightlife", "adventure", "shopping"}

const (
	flightOptionCount = 5
	hotelOptionCount  = 5
)

func (p *SeededPricingProvider) FlightOptions(origin, destination string, departure, returnDate time.Time) []models.FlightOption {
	rng := seededRand("flights", origin, destination, departure.Format("2006-01-02"), returnDate.Format("2006-01-02"))

	options := make([]models.FlightOption, 0, flightOptionCount)
	for i := 0; i < flightOptionCount; i++ {
		airline := airlines[rng.Intn(len(airlines))]
		stops := rng.Intn(3)
		hours := 2 + rng.Intn(12)
		minutes := rng.Intn(60)
		options = append(options, models.FlightOption{
			ID:           fmt.Sprintf("fl-%08x", rng.Uint32()),
			Airline:      airline,
			FlightNumber: fmt.Sprintf("%s%d", initials(airline), 100+rng.Intn(900)),
			Price:        float64(150 + rng.Intn(1200)),
			Duration:     fmt.Sprintf("%dh %02dm", hours, minutes),
			Stops:        stops,
		})
	}
	return options
}

func (p *SeededPricingProvider) HotelOptions(destination string, checkIn, checkOut time.Time) []models.HotelOption {
	rng := seededRand("hotels", destination, checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"))

	options := make([]models.HotelOption, 0, hotelOptionCount)
	for i := 0; i < hotelOptionCount; i++ {
		name := fmt.Sprintf("%s %s", hotelNames[rng.Intn(len(hotelNames))], destination)
		amenityCount := 2 + rng.Intn(len(hotelAmenities)-2)
		options = append(options, models.HotelOption{
			ID:            fmt.Sprintf("ht-%08x", rng.Uint32()),
			Name:          name,
			PricePerNight: float64(40 + rng.Intn(260)),
			Rating:        3.0 + float64(rng.Intn(21))/10.0,
			Amenities:     pickAmenities(rng, amenityCount),
		})
	}
	return options
}

func (p *SeededPricingProvider) AttractionFor(destination, category string) (models.Attraction, bool) {
	name, ok := attractionCatalog[category]
	if !ok {
		return models.Attraction{}, false
	}
	rng := seededRand("attraction", destination, category)
	return models.Attraction{
		ID:       fmt.Sprintf("at-%08x", rng.Uint32()),
		Name:     fmt.Sprintf("%s of %s", name, destination),
		Category: category,
		Price:    float64(10 + rng.Intn(90)),
	}, true
}

func (p *SeededPricingProvider) Categories() []string {
	return categoryOrder
}

func seededRand(parts ...string) *rand.Rand {
	h := fnv.New64a()
	for _, part := range parts {
		h.Write([]byte(strings.ToLower(part)))
		h.Write([]byte{0})
	}
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

func pickAmenities(rng *rand.Rand, count int) []string {
	perm := rng.Perm(len(hotelAmenities))
	picked := make([]string, 0, count)
	for _, idx := range perm[:count] {
		picked = append(picked, hotelAmenities[idx])
	}
	return picked
}

func initials(airline string) string {
	var b strings.Builder
	for _, word := range strings.Fields(airline) {
		b.WriteByte(word[0])
	}
	return strings.ToUpper(b.String())
}
