package estimator

import (
	"testing"
	"time"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureProvider returns canned options so the aggregation contract can be
// tested independently of the generation strategy.
type fixtureProvider struct {
	flights []models.FlightOption
	hotels  []models.HotelOption
	catalog map[string]models.Attraction
	order   []string
}

func (p *fixtureProvider) FlightOptions(_, _ string, _, _ time.Time) []models.FlightOption {
	return append([]models.FlightOption(nil), p.flights...)
}

func (p *fixtureProvider) HotelOptions(_ string, _, _ time.Time) []models.HotelOption {
	return append([]models.HotelOption(nil), p.hotels...)
}

func (p *fixtureProvider) AttractionFor(_, category string) (models.Attraction, bool) {
	attraction, ok := p.catalog[category]
	return attraction, ok
}

func (p *fixtureProvider) Categories() []string {
	return p.order
}

func attractionFixture(category string, price float64) models.Attraction {
	return models.Attraction{ID: "at-" + category, Name: category, Category: category, Price: price}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights_RoundsPartialDaysUp(t *testing.T) {
	checkIn := date(2025, time.July, 1)

	assert.Equal(t, 7, Nights(checkIn, date(2025, time.July, 8)))
	assert.Equal(t, 1, Nights(checkIn, checkIn.Add(25*time.Hour)))
	assert.Equal(t, 1, Nights(checkIn, checkIn.Add(2*time.Hour)))
	assert.Equal(t, 0, Nights(checkIn, checkIn))
}

func TestFlightOptions_SortedAscendingByPrice(t *testing.T) {
	provider := &fixtureProvider{
		flights: []models.FlightOption{
			{ID: "f1", Price: 900},
			{ID: "f2", Price: 300},
			{ID: "f3", Price: 600},
		},
	}
	e := NewEstimator(provider)

	options := e.FlightOptions("Paris", "Rome", date(2025, time.July, 1), date(2025, time.July, 8))

	require.Len(t, options, 3)
	assert.Equal(t, []string{"f2", "f3", "f1"}, []string{options[0].ID, options[1].ID, options[2].ID})
}

func TestHotelOptions_TotalPriceAndSortOrder(t *testing.T) {
	provider := &fixtureProvider{
		hotels: []models.HotelOption{
			{ID: "h1", PricePerNight: 300},
			{ID: "h2", PricePerNight: 200},
		},
	}
	e := NewEstimator(provider)

	options := e.HotelOptions("Rome", date(2025, time.July, 1), date(2025, time.July, 8))

	require.Len(t, options, 2)
	assert.Equal(t, "h2", options[0].ID)
	assert.Equal(t, 1400.0, options[0].TotalPrice)
	assert.Equal(t, "h1", options[1].ID)
	assert.Equal(t, 2100.0, options[1].TotalPrice)
}

func TestAttractions_OnePerInterestDeduplicated(t *testing.T) {
	provider := &fixtureProvider{
		catalog: map[string]models.Attraction{
			"museums": attractionFixture("museums", 20),
			"food":    attractionFixture("food", 40),
			"nature":  attractionFixture("nature", 15),
		},
		order: []string{"museums", "food", "nature"},
	}
	e := NewEstimator(provider)

	result := e.Attractions("Rome", []string{"museums", "Food", "museums", "food "})

	require.Len(t, result, 3) // two interests plus one backfill to reach three
	assert.Equal(t, "museums", result[0].Category)
	assert.Equal(t, "food", result[1].Category)
	assert.Equal(t, "nature", result[2].Category)
}

func TestAttractions_NoInterestsBackfillsToThree(t *testing.T) {
	provider := &fixtureProvider{
		catalog: map[string]models.Attraction{
			"museums": attractionFixture("museums", 20),
			"food":    attractionFixture("food", 40),
			"nature":  attractionFixture("nature", 15),
			"art":     attractionFixture("art", 25),
		},
		order: []string{"museums", "food", "nature", "art"},
	}
	e := NewEstimator(provider)

	result := e.Attractions("Rome", nil)

	require.Len(t, result, 3)
	assert.Equal(t, "museums", result[0].Category)
	assert.Equal(t, "food", result[1].Category)
	assert.Equal(t, "nature", result[2].Category)
}

func TestAttractions_ExhaustedCatalogStopsShort(t *testing.T) {
	provider := &fixtureProvider{
		catalog: map[string]models.Attraction{
			"museums": attractionFixture("museums", 20),
		},
		order: []string{"museums"},
	}
	e := NewEstimator(provider)

	result := e.Attractions("Rome", []string{"skydiving"})

	require.Len(t, result, 1)
	assert.Equal(t, "museums", result[0].Category)
}

func TestAttractions_CappedAtSix(t *testing.T) {
	catalog := map[string]models.Attraction{}
	var interests []string
	for _, category := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		catalog[category] = attractionFixture(category, 10)
		interests = append(interests, category)
	}
	e := NewEstimator(&fixtureProvider{catalog: catalog, order: interests})

	result := e.Attractions("Rome", interests)

	assert.Len(t, result, 6)
}

func TestTotalEstimate_AggregationContract(t *testing.T) {
	// 7 nights, cheapest flight 1200, cheapest hotel total 1400, attractions
	// 300, food 7x3x33, transport 7x50: round(3943 * 1.10) = 4337.
	e := &Estimator{FoodPerMeal: 33, TransportPerDay: 50}

	flights := []models.FlightOption{{Price: 1500}, {Price: 1200}}
	hotels := []models.HotelOption{
		{PricePerNight: 300, TotalPrice: 2100},
		{PricePerNight: 200, TotalPrice: 1400},
	}
	attractions := []models.Attraction{{Price: 100}, {Price: 200}}

	assert.Equal(t, 4337.0, e.TotalEstimate(flights, hotels, attractions, 7))
}

func TestTotalEstimate_EmptyOptionSetsContributeZero(t *testing.T) {
	e := &Estimator{FoodPerMeal: 33, TransportPerDay: 50}

	// Only food and transport remain: round((3*3*33 + 3*50) * 1.10) = 492.
	assert.Equal(t, 492.0, e.TotalEstimate(nil, nil, nil, 3))
	assert.Equal(t, 0.0, e.TotalEstimate(nil, nil, nil, 0))
}

func TestTotalEstimate_MonotonicInNights(t *testing.T) {
	e := NewEstimator(&fixtureProvider{})
	flights := []models.FlightOption{{Price: 500}}
	hotels := []models.HotelOption{{PricePerNight: 100, TotalPrice: 100}}

	previous := 0.0
	for nights := 1; nights <= 14; nights++ {
		total := e.TotalEstimate(flights, hotels, nil, nights)
		assert.GreaterOrEqual(t, total, previous, "nights=%d", nights)
		previous = total
	}
}

func TestTotalEstimate_MonotonicInAttractions(t *testing.T) {
	e := NewEstimator(&fixtureProvider{})

	var attractions []models.Attraction
	previous := e.TotalEstimate(nil, nil, attractions, 2)
	for i := 0; i < 5; i++ {
		attractions = append(attractions, models.Attraction{Price: 25})
		total := e.TotalEstimate(nil, nil, attractions, 2)
		assert.GreaterOrEqual(t, total, previous, "attractions=%d", len(attractions))
		previous = total
	}
}

func TestSeededProvider_DeterministicForSameRequest(t *testing.T) {
	provider := NewSeededPricingProvider()
	departure := date(2025, time.July, 1)
	returnDate := date(2025, time.July, 8)

	first := provider.FlightOptions("Paris", "Rome", departure, returnDate)
	second := provider.FlightOptions("Paris", "Rome", departure, returnDate)
	assert.Equal(t, first, second)

	hotels1 := provider.HotelOptions("Rome", departure, returnDate)
	hotels2 := provider.HotelOptions("Rome", departure, returnDate)
	assert.Equal(t, hotels1, hotels2)
}

func TestSeededProvider_KnowsItsOwnCatalog(t *testing.T) {
	provider := NewSeededPricingProvider()

	for _, category := range provider.Categories() {
		attraction, ok := provider.AttractionFor("Rome", category)
		require.True(t, ok, "category %s", category)
		assert.Equal(t, category, attraction.Category)
		assert.Positive(t, attraction.Price)
	}

	_, ok := provider.AttractionFor("Rome", "unknown")
	assert.False(t, ok)
}
