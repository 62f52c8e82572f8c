package booking

import (
	"context"
	"hash/fnv"

	"voyago/models"
)

// AvailabilityChecker answers whether a resource can be reserved for a date
// range. An implementation that errors is treated by the coordinator as
// unavailable; no payment intent is ever created on a failed check.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, req models.AvailabilityRequest) (bool, error)
}

// SeededAvailabilityChecker is a deterministic stand-in for a real inventory
// service: the same resource and window always answers the same way, with
// most resources available.
type SeededAvailabilityChecker struct{}

func NewSeededAvailabilityChecker() *SeededAvailabilityChecker {
	return &SeededAvailabilityChecker{}
}

func (c *SeededAvailabilityChecker) CheckAvailability(_ context.Context, req models.AvailabilityRequest) (bool, error) {
	h := fnv.New64a()
	h.Write([]byte(req.ResourceType))
	h.Write([]byte{0})
	h.Write([]byte(req.ResourceID))
	h.Write([]byte{0})
	h.Write([]byte(req.StartDate))
	h.Write([]byte{0})
	h.Write([]byte(req.EndDate))
	return h.Sum64()%8 != 0, nil
}
