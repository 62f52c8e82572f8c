package models

import "time"

// ResourceType identifies what kind of resource a booking reserves.
type ResourceType string

const (
	ResourceAccommodation ResourceType = "accommodation"
	ResourceAttraction    ResourceType = "attraction"
	ResourceWorkspace     ResourceType = "workspace"
)

// Valid reports whether rt is one of the known resource types.
func (rt ResourceType) Valid() bool {
	switch rt {
	case ResourceAccommodation, ResourceAttraction, ResourceWorkspace:
		return true
	}
	return false
}

// BookingStatus is the lifecycle status of a persisted booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusFailed    BookingStatus = "failed"
)

// Booking is a persisted record that a specific priced resource has been
// reserved and paid for on behalf of a trip. At most one confirmed booking
// exists per (trip, resource type, resource id); the unique index on the
// bookings collection enforces this. A confirmed booking is immutable.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	TripID          string        `bson:"trip_id" json:"tripId"`
	ResourceType    ResourceType  `bson:"resource_type" json:"resourceType"`
	ResourceID      string        `bson:"resource_id" json:"resourceId"`
	StartDate       string        `bson:"start_date,omitempty" json:"startDate,omitempty"` // "YYYY-MM-DD"; empty for point-in-time resources
	EndDate         string        `bson:"end_date,omitempty" json:"endDate,omitempty"`
	PaymentIntentID string        `bson:"payment_intent_id" json:"paymentIntentId"`
	Amount          int64         `bson:"amount" json:"amount"` // minor currency units
	Currency        string        `bson:"currency" json:"currency"`
	Status          BookingStatus `bson:"status" json:"status"`
	CreatedAt       time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updatedAt"`
}

// AttemptState is one state of a booking attempt's lifecycle.
type AttemptState string

const (
	AttemptSearching           AttemptState = "searching"
	AttemptAvailabilityChecked AttemptState = "availability_checked"
	AttemptUnavailable         AttemptState = "unavailable"
	AttemptPaymentPending      AttemptState = "payment_pending"
	AttemptPaymentConfirmed    AttemptState = "payment_confirmed"
	AttemptPaymentFailed       AttemptState = "payment_failed"
	AttemptBookingConfirmed    AttemptState = "booking_confirmed"
)

// attemptTransitions is the exhaustive transition table. States absent from
// the map (unavailable, payment_failed, booking_confirmed) are terminal.
var attemptTransitions = map[AttemptState][]AttemptState{
	AttemptSearching:           {AttemptAvailabilityChecked, AttemptUnavailable},
	AttemptAvailabilityChecked: {AttemptPaymentPending},
	AttemptPaymentPending:      {AttemptPaymentConfirmed, AttemptPaymentFailed},
	AttemptPaymentConfirmed:    {AttemptBookingConfirmed},
}

// CanTransition reports whether moving from s to next is a legal transition.
func (s AttemptState) CanTransition(next AttemptState) bool {
	for _, allowed := range attemptTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are possible from s.
func (s AttemptState) Terminal() bool {
	return len(attemptTransitions[s]) == 0
}

// BookingAttempt holds the state of one availability-to-confirmation cycle.
// It lives in the booking session cache between requests; a failed attempt is
// never reopened, retries start a fresh attempt with a new payment intent.
type BookingAttempt struct {
	AttemptID       string       `json:"attemptId"`
	TripID          string       `json:"tripId"`
	ResourceType    ResourceType `json:"resourceType"`
	ResourceID      string       `json:"resourceId"`
	StartDate       string       `json:"startDate,omitempty"`
	EndDate         string       `json:"endDate,omitempty"`
	State           AttemptState `json:"state"`
	PaymentIntentID string       `json:"paymentIntentId,omitempty"`
	Amount          int64        `json:"amount,omitempty"`
	Currency        string       `json:"currency,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}
