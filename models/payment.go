package models

// --- Payment intent request/response ---

// PaymentIntentRequest asks the payment processor to stage a charge for one
// resource on behalf of a trip. Amount is in minor currency units.
type PaymentIntentRequest struct {
	TripID       string       `json:"tripId"`
	ResourceType ResourceType `json:"resourceType"`
	ResourceID   string       `json:"resourceId"`
	Amount       int64        `json:"amount"`
	Currency     string       `json:"currency"`
	Description  string       `json:"description"`
	StartDate    string       `json:"startDate,omitempty"`
	EndDate      string       `json:"endDate,omitempty"`
}

// PaymentIntent mirrors the processor-side handle for a staged charge.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string // processor status, "succeeded" once captured
	Amount       int64
	Currency     string
	Metadata     map[string]string
}

// PaymentIntentSucceeded is the processor status a payment must reach before
// a booking may be confirmed against it.
const PaymentIntentSucceeded = "succeeded"

// PaymentIntentResponse is returned to the caller after staging a charge.
type PaymentIntentResponse struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
}

// AvailabilityRequest asks whether a resource can be reserved for a window
// on behalf of a trip.
type AvailabilityRequest struct {
	TripID       string       `json:"tripId"`
	ResourceType ResourceType `json:"resourceType"`
	ResourceID   string       `json:"resourceId"`
	StartDate    string       `json:"startDate,omitempty"`
	EndDate      string       `json:"endDate,omitempty"`
}

// AvailabilityResponse reports the outcome of an availability check.
type AvailabilityResponse struct {
	Available bool `json:"available"`
}
