package itinerary

import (
	"time"

	"voyago/models"
)

// DateField selects which end of a stay window an edit targets.
type DateField string

const (
	FieldArrival   DateField = "arrival"
	FieldDeparture DateField = "departure"
)

// Bounds carries the trip-level date window, when set.
type Bounds struct {
	Start *time.Time
	End   *time.Time
}

const day = 24 * time.Hour

// Every operation below takes the current ordered destination list plus the
// trip bounds and returns a new list satisfying all itinerary invariants:
// arrival < departure per stop, no overlap between consecutive stops, and the
// trip bounds respected at the edges. Operations never fail; out-of-range
// input is clamped and inconsistent dates are repaired, not rejected.

// Reorder moves the element at fromIndex to toIndex and re-derives the stay
// windows forward, preserving each destination's span. The first stop is
// anchored at the trip start when one is set, otherwise at the earliest
// arrival of the incoming list.
func Reorder(list []models.Destination, bounds Bounds, fromIndex, toIndex int) []models.Destination {
	out := clone(list)
	n := len(out)
	if n == 0 {
		return out
	}
	fromIndex = clampIndex(fromIndex, n)
	toIndex = clampIndex(toIndex, n)

	moved := out[fromIndex]
	out = append(out[:fromIndex], out[fromIndex+1:]...)
	out = append(out, models.Destination{})
	copy(out[toIndex+1:], out[toIndex:])
	out[toIndex] = moved

	anchor := earliestArrival(list)
	if bounds.Start != nil {
		anchor = *bounds.Start
	}
	for i := range out {
		span := out[i].DepartureDate.Sub(out[i].ArrivalDate)
		if span < day {
			span = day
		}
		out[i].ArrivalDate = anchor
		out[i].DepartureDate = anchor.Add(span)
		anchor = out[i].DepartureDate
	}

	reindex(out)
	repair(out, bounds)
	return out
}

// UpdateDate sets one date field on the destination at index, then repairs.
func UpdateDate(list []models.Destination, bounds Bounds, index int, field DateField, newDate time.Time) []models.Destination {
	out := clone(list)
	if len(out) == 0 {
		return out
	}
	index = clampIndex(index, len(out))

	switch field {
	case FieldArrival:
		out[index].ArrivalDate = newDate
	case FieldDeparture:
		out[index].DepartureDate = newDate
	}

	repair(out, bounds)
	return out
}

// Add appends a destination, then repairs. When the new destination carries
// no dates, it defaults to the day after the previous last departure through
// one day later.
func Add(list []models.Destination, bounds Bounds, dest models.Destination) []models.Destination {
	out := clone(list)

	if dest.ArrivalDate.IsZero() || dest.DepartureDate.IsZero() {
		var base time.Time
		switch {
		case len(out) > 0:
			base = out[len(out)-1].DepartureDate.AddDate(0, 0, 1)
		case bounds.Start != nil:
			base = *bounds.Start
		default:
			now := time.Now()
			base = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		}
		dest.ArrivalDate = base
		dest.DepartureDate = base.AddDate(0, 0, 1)
	}

	out = append(out, dest)
	reindex(out)
	repair(out, bounds)
	return out
}

// Remove deletes the destination at index, then repairs.
func Remove(list []models.Destination, bounds Bounds, index int) []models.Destination {
	out := clone(list)
	if len(out) == 0 {
		return out
	}
	index = clampIndex(index, len(out))

	out = append(out[:index], out[index+1:]...)
	reindex(out)
	repair(out, bounds)
	return out
}

// repair restores the itinerary invariants in a single forward sweep.
// The edge clamps run after the interior pass; a start clamp that breaks
// adjacency re-runs the sweep from the second element so the violation is
// repaired rather than left behind.
func repair(list []models.Destination, bounds Bounds) {
	n := len(list)
	if n == 0 {
		return
	}

	sweep := func(from int) {
		for i := from; i < n; i++ {
			if i > 0 && list[i].ArrivalDate.Before(list[i-1].DepartureDate) {
				list[i].ArrivalDate = list[i-1].DepartureDate
			}
			if !list[i].ArrivalDate.Before(list[i].DepartureDate) {
				list[i].DepartureDate = list[i].ArrivalDate.AddDate(0, 0, 1)
			}
		}
	}
	sweep(0)

	if bounds.Start != nil && list[0].ArrivalDate.Before(*bounds.Start) {
		list[0].ArrivalDate = *bounds.Start
		if !list[0].ArrivalDate.Before(list[0].DepartureDate) {
			list[0].DepartureDate = list[0].ArrivalDate.AddDate(0, 0, 1)
		}
		sweep(1)
	}

	last := n - 1
	if bounds.End != nil && list[last].DepartureDate.After(*bounds.End) {
		list[last].DepartureDate = *bounds.End
		if !list[last].ArrivalDate.Before(list[last].DepartureDate) {
			list[last].ArrivalDate = list[last].DepartureDate.AddDate(0, 0, -1)
		}
		// Pull earlier stops in when the clamp squeezed the tail, so the
		// adjacency invariant survives the edge clamp.
		for i := last - 1; i >= 0; i-- {
			if !list[i].DepartureDate.After(list[i+1].ArrivalDate) {
				break
			}
			list[i].DepartureDate = list[i+1].ArrivalDate
			if !list[i].ArrivalDate.Before(list[i].DepartureDate) {
				list[i].ArrivalDate = list[i].DepartureDate.AddDate(0, 0, -1)
			}
		}
	}
}

func clone(list []models.Destination) []models.Destination {
	out := make([]models.Destination, len(list))
	copy(out, list)
	return out
}

func reindex(list []models.Destination) {
	for i := range list {
		list[i].OrderIndex = i
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func earliestArrival(list []models.Destination) time.Time {
	if len(list) == 0 {
		return time.Time{}
	}
	earliest := list[0].ArrivalDate
	for _, d := range list[1:] {
		if d.ArrivalDate.Before(earliest) {
			earliest = d.ArrivalDate
		}
	}
	return earliest
}
