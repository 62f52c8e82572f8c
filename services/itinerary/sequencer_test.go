package itinerary

import (
	"testing"
	"time"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dest(id string, arrival, departure time.Time, index int) models.Destination {
	return models.Destination{
		ID:            id,
		City:          id,
		ArrivalDate:   arrival,
		DepartureDate: departure,
		OrderIndex:    index,
	}
}

// checkInvariants asserts the full itinerary contract: positive stay spans,
// no overlap between consecutive stops, contiguous order indexes, and the
// trip bounds respected at the edges.
func checkInvariants(t *testing.T, list []models.Destination, bounds Bounds) {
	t.Helper()
	for i, d := range list {
		assert.True(t, d.ArrivalDate.Before(d.DepartureDate),
			"destination %d: arrival %v not before departure %v", i, d.ArrivalDate, d.DepartureDate)
		assert.Equal(t, i, d.OrderIndex, "destination %d: order index", i)
		if i > 0 {
			assert.False(t, d.ArrivalDate.Before(list[i-1].DepartureDate),
				"destination %d overlaps previous departure", i)
		}
	}
	if len(list) == 0 {
		return
	}
	if bounds.Start != nil {
		assert.False(t, list[0].ArrivalDate.Before(*bounds.Start), "first arrival before trip start")
	}
	if bounds.End != nil {
		assert.False(t, list[len(list)-1].DepartureDate.After(*bounds.End), "last departure after trip end")
	}
}

func TestReorder_RederivesDatesPreservingSpans(t *testing.T) {
	d1 := date(2025, time.July, 1)
	list := []models.Destination{
		dest("paris", d1, d1.AddDate(0, 0, 3), 0),
		dest("berlin", d1.AddDate(0, 0, 4), d1.AddDate(0, 0, 7), 1),
		dest("rome", d1.AddDate(0, 0, 8), d1.AddDate(0, 0, 11), 2),
	}

	out := Reorder(list, Bounds{}, 0, 1)

	require.Len(t, out, 3)
	assert.Equal(t, "berlin", out[0].ID)
	assert.Equal(t, "paris", out[1].ID)
	assert.Equal(t, "rome", out[2].ID)

	// Forward re-derivation anchored at the earliest arrival, spans kept.
	assert.Equal(t, d1, out[0].ArrivalDate)
	assert.Equal(t, d1.AddDate(0, 0, 3), out[0].DepartureDate)
	assert.Equal(t, d1.AddDate(0, 0, 3), out[1].ArrivalDate)
	assert.Equal(t, d1.AddDate(0, 0, 6), out[1].DepartureDate)
	assert.Equal(t, d1.AddDate(0, 0, 6), out[2].ArrivalDate)
	assert.Equal(t, d1.AddDate(0, 0, 9), out[2].DepartureDate)

	checkInvariants(t, out, Bounds{})
}

func TestReorder_DoesNotMutateInput(t *testing.T) {
	d1 := date(2025, time.July, 1)
	list := []models.Destination{
		dest("a", d1, d1.AddDate(0, 0, 2), 0),
		dest("b", d1.AddDate(0, 0, 2), d1.AddDate(0, 0, 5), 1),
	}
	before := clone(list)

	Reorder(list, Bounds{}, 0, 1)

	assert.Equal(t, before, list)
}

func TestReorder_AnchorsAtTripStart(t *testing.T) {
	start := date(2025, time.June, 10)
	d1 := date(2025, time.June, 12)
	list := []models.Destination{
		dest("a", d1, d1.AddDate(0, 0, 2), 0),
		dest("b", d1.AddDate(0, 0, 2), d1.AddDate(0, 0, 4), 1),
	}
	bounds := Bounds{Start: &start}

	out := Reorder(list, bounds, 1, 0)

	assert.Equal(t, start, out[0].ArrivalDate)
	checkInvariants(t, out, bounds)
}

func TestUpdateDate_RepairsForwardOverlap(t *testing.T) {
	d1 := date(2025, time.July, 1)
	list := []models.Destination{
		dest("a", d1, d1.AddDate(0, 0, 3), 0),
		dest("b", d1.AddDate(0, 0, 3), d1.AddDate(0, 0, 6), 1),
	}

	// Push the first departure past the second arrival.
	out := UpdateDate(list, Bounds{}, 0, FieldDeparture, d1.AddDate(0, 0, 5))

	assert.Equal(t, d1.AddDate(0, 0, 5), out[0].DepartureDate)
	assert.Equal(t, d1.AddDate(0, 0, 5), out[1].ArrivalDate)
	checkInvariants(t, out, Bounds{})
}

func TestUpdateDate_ArrivalAfterDepartureGetsOneNight(t *testing.T) {
	d1 := date(2025, time.July, 1)
	list := []models.Destination{
		dest("a", d1, d1.AddDate(0, 0, 2), 0),
	}

	out := UpdateDate(list, Bounds{}, 0, FieldArrival, d1.AddDate(0, 0, 5))

	assert.Equal(t, d1.AddDate(0, 0, 5), out[0].ArrivalDate)
	assert.Equal(t, d1.AddDate(0, 0, 6), out[0].DepartureDate)
	checkInvariants(t, out, Bounds{})
}

func TestUpdateDate_ClampsToTripStart(t *testing.T) {
	start := date(2025, time.July, 1)
	list := []models.Destination{
		dest("a", start.AddDate(0, 0, 1), start.AddDate(0, 0, 4), 0),
	}
	bounds := Bounds{Start: &start}

	out := UpdateDate(list, bounds, 0, FieldArrival, start.AddDate(0, 0, -5))

	assert.Equal(t, start, out[0].ArrivalDate)
	checkInvariants(t, out, bounds)
}

func TestUpdateDate_ClampsToTripEnd(t *testing.T) {
	end := date(2025, time.July, 10)
	list := []models.Destination{
		dest("a", end.AddDate(0, 0, -4), end.AddDate(0, 0, -1), 0),
	}
	bounds := Bounds{End: &end}

	out := UpdateDate(list, bounds, 0, FieldDeparture, end.AddDate(0, 0, 6))

	assert.Equal(t, end, out[0].DepartureDate)
	checkInvariants(t, out, bounds)
}

func TestUpdateDate_EndClampPullsArrivalBack(t *testing.T) {
	end := date(2025, time.July, 10)
	list := []models.Destination{
		dest("a", end.AddDate(0, 0, -1), end.AddDate(0, 0, 2), 0),
	}
	bounds := Bounds{End: &end}

	// Arrival lands on the clamped departure, so it is pulled one day back.
	out := UpdateDate(list, bounds, 0, FieldArrival, end)

	assert.Equal(t, end, out[0].DepartureDate)
	assert.Equal(t, end.AddDate(0, 0, -1), out[0].ArrivalDate)
	checkInvariants(t, out, bounds)
}

func TestAdd_DefaultsToDayAfterLastDeparture(t *testing.T) {
	d1 := date(2025, time.July, 1)
	list := []models.Destination{
		dest("a", d1, d1.AddDate(0, 0, 3), 0),
	}

	out := Add(list, Bounds{}, models.Destination{ID: "b", City: "Berlin"})

	require.Len(t, out, 2)
	assert.Equal(t, d1.AddDate(0, 0, 4), out[1].ArrivalDate)
	assert.Equal(t, d1.AddDate(0, 0, 5), out[1].DepartureDate)
	checkInvariants(t, out, Bounds{})
}

func TestAdd_EmptyListStartsAtTripStart(t *testing.T) {
	start := date(2025, time.July, 1)
	bounds := Bounds{Start: &start}

	out := Add(nil, bounds, models.Destination{ID: "a", City: "Paris"})

	require.Len(t, out, 1)
	assert.Equal(t, start, out[0].ArrivalDate)
	assert.Equal(t, start.AddDate(0, 0, 1), out[0].DepartureDate)
	checkInvariants(t, out, bounds)
}

func TestRemove_ReindexesAndRepairs(t *testing.T) {
	d1 := date(2025, time.July, 1)
	list := []models.Destination{
		dest("a", d1, d1.AddDate(0, 0, 2), 0),
		dest("b", d1.AddDate(0, 0, 2), d1.AddDate(0, 0, 4), 1),
		dest("c", d1.AddDate(0, 0, 4), d1.AddDate(0, 0, 6), 2),
	}

	out := Remove(list, Bounds{}, 1)

	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "c", out[1].ID)
	checkInvariants(t, out, Bounds{})
}

func TestRemove_EmptyListIsNoop(t *testing.T) {
	out := Remove(nil, Bounds{}, 0)
	assert.Empty(t, out)
}

func TestOperationSequence_AlwaysSatisfiesInvariants(t *testing.T) {
	start := date(2025, time.August, 1)
	end := date(2025, time.August, 20)
	bounds := Bounds{Start: &start, End: &end}

	list := Add(nil, bounds, models.Destination{ID: "lisbon", City: "Lisbon"})
	list = Add(list, bounds, models.Destination{ID: "madrid", City: "Madrid"})
	list = Add(list, bounds, models.Destination{ID: "porto", City: "Porto"})
	checkInvariants(t, list, bounds)

	list = UpdateDate(list, bounds, 1, FieldDeparture, end.AddDate(0, 0, 10))
	checkInvariants(t, list, bounds)

	list = Reorder(list, bounds, 2, 0)
	checkInvariants(t, list, bounds)

	list = UpdateDate(list, bounds, 0, FieldArrival, start.AddDate(0, 0, -3))
	checkInvariants(t, list, bounds)

	list = Remove(list, bounds, 1)
	checkInvariants(t, list, bounds)

	list = Reorder(list, bounds, 0, 1)
	checkInvariants(t, list, bounds)
}

func TestClampIndex_OutOfRangeInputIsRepaired(t *testing.T) {
	d1 := date(2025, time.July, 1)
	list := []models.Destination{
		dest("a", d1, d1.AddDate(0, 0, 2), 0),
		dest("b", d1.AddDate(0, 0, 2), d1.AddDate(0, 0, 4), 1),
	}

	out := Reorder(list, Bounds{}, -5, 99)

	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].ID)
	assert.Equal(t, "a", out[1].ID)
	checkInvariants(t, out, Bounds{})
}
