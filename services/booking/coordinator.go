package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "voyago/database/repository/booking"
	"voyago/models"
	"voyago/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// BookingCoordinator drives one resource booking from availability check
// through payment to a confirmed, persisted booking.
type BookingCoordinator interface {
	CheckAvailability(ctx context.Context, req models.AvailabilityRequest) (*models.AvailabilityResponse, error)
	CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntentResponse, error)
	ConfirmPayment(ctx context.Context, paymentIntentID string) (*models.Booking, error)
	ListTripBookings(tripID string) ([]models.Booking, error)
}

// DefaultBookingCoordinator implements BookingCoordinator. It holds no locks:
// the at-most-one guarantee on confirmed bookings comes entirely from the
// repository's unique index plus upsert.
type DefaultBookingCoordinator struct {
	Availability    AvailabilityChecker
	Gateway         PaymentGateway
	Attempts        AttemptStore
	Repo            bookingRepo.BookingRepository
	DefaultCurrency string
}

// CheckAvailability starts a fresh attempt for the (trip, resource) pair and
// records the outcome. A checker error is treated as unavailable.
func (c *DefaultBookingCoordinator) CheckAvailability(ctx context.Context, req models.AvailabilityRequest) (*models.AvailabilityResponse, error) {
	if err := validateAvailabilityRequest(req); err != nil {
		return nil, err
	}
	logger := utils.GetLogger()

	attempt := &models.BookingAttempt{
		AttemptID:    uuid.New().String(),
		TripID:       req.TripID,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		State:        models.AttemptSearching,
		CreatedAt:    time.Now(),
	}

	available, err := c.Availability.CheckAvailability(ctx, req)
	if err != nil {
		// Fail closed: an errored check never leads to a payment intent.
		logger.Warn("availability check errored, treating as unavailable",
			zap.String("resourceID", req.ResourceID), zap.Error(err))
		available = false
	}

	next := models.AttemptUnavailable
	if available {
		next = models.AttemptAvailabilityChecked
	}
	attempt.State = next

	if err := c.Attempts.Save(ctx, attempt); err != nil {
		return nil, fmt.Errorf("failed to store booking attempt: %w", err)
	}
	return &models.AvailabilityResponse{Available: available}, nil
}

// CreatePaymentIntent stages a charge for a resource whose availability has
// been confirmed. Validation failures happen before any external call; a
// gateway failure leaves the attempt untouched.
func (c *DefaultBookingCoordinator) CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntentResponse, error) {
	if err := validateIntentRequest(req); err != nil {
		return nil, err
	}
	if req.Currency == "" {
		req.Currency = c.DefaultCurrency
	}

	attempt, err := c.Attempts.GetByResource(ctx, req.TripID, req.ResourceType, req.ResourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking attempt: %w", err)
	}
	if attempt == nil {
		return nil, NewConflictError("availability has not been checked for this resource")
	}
	if !attempt.State.CanTransition(models.AttemptPaymentPending) {
		switch attempt.State {
		case models.AttemptUnavailable:
			return nil, NewConflictError("resource is unavailable for the requested dates")
		case models.AttemptPaymentPending:
			return nil, NewConflictError("a payment is already pending for this resource")
		case models.AttemptPaymentFailed:
			return nil, NewConflictError("previous payment failed; start a new attempt")
		default:
			return nil, NewConflictError(fmt.Sprintf("cannot create a payment intent in state %q", attempt.State))
		}
	}

	intent, err := c.Gateway.CreateIntent(ctx, req)
	if err != nil {
		return nil, NewUpstreamPaymentError(fmt.Sprintf("payment intent creation failed: %v", err), true)
	}

	attempt.State = models.AttemptPaymentPending
	attempt.PaymentIntentID = intent.ID
	attempt.Amount = intent.Amount
	attempt.Currency = intent.Currency
	if err := c.Attempts.Save(ctx, attempt); err != nil {
		return nil, fmt.Errorf("failed to store booking attempt: %w", err)
	}

	return &models.PaymentIntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
	}, nil
}

// ConfirmPayment verifies the referenced payment succeeded upstream, then
// upserts the booking keyed on (trip, resource type, resource id). Calling it
// twice with the same intent id lands on the same row and never charges
// again: the server only reads the processor's state here.
func (c *DefaultBookingCoordinator) ConfirmPayment(ctx context.Context, paymentIntentID string) (*models.Booking, error) {
	if paymentIntentID == "" {
		return nil, NewValidationError("missing payment intent id")
	}
	logger := utils.GetLogger()

	intent, err := c.Gateway.RetrieveIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, NewUpstreamPaymentError(fmt.Sprintf("failed to retrieve payment intent: %v", err), true)
	}
	if intent.Status != models.PaymentIntentSucceeded {
		c.markAttemptFailed(ctx, paymentIntentID)
		return nil, NewUpstreamPaymentError(
			fmt.Sprintf("payment %s has not succeeded (status %q)", paymentIntentID, intent.Status), true)
	}

	tripID := intent.Metadata[metaTripID]
	resourceType := models.ResourceType(intent.Metadata[metaResourceType])
	resourceID := intent.Metadata[metaResourceID]
	if tripID == "" || resourceID == "" || !resourceType.Valid() {
		return nil, NewValidationError("payment intent is missing booking metadata")
	}

	booking := &models.Booking{
		ID:              uuid.New().String(),
		TripID:          tripID,
		ResourceType:    resourceType,
		ResourceID:      resourceID,
		StartDate:       intent.Metadata[metaStartDate],
		EndDate:         intent.Metadata[metaEndDate],
		PaymentIntentID: paymentIntentID,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
		Status:          models.BookingStatusConfirmed,
	}

	stored, err := c.Repo.UpsertConfirmed(booking)
	if err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	c.closeAttempt(ctx, paymentIntentID)
	logger.Info("booking confirmed",
		zap.String("tripID", stored.TripID),
		zap.String("resourceID", stored.ResourceID),
		zap.String("paymentIntentID", paymentIntentID))
	return stored, nil
}

// ListTripBookings returns all bookings recorded for a trip.
func (c *DefaultBookingCoordinator) ListTripBookings(tripID string) ([]models.Booking, error) {
	if tripID == "" {
		return nil, NewValidationError("missing trip id")
	}
	return c.Repo.ListByTrip(tripID)
}

// markAttemptFailed records the terminal payment failure on the attempt.
// Best effort: a lost attempt only means the caller starts a fresh one.
func (c *DefaultBookingCoordinator) markAttemptFailed(ctx context.Context, paymentIntentID string) {
	attempt, err := c.Attempts.GetByIntent(ctx, paymentIntentID)
	if err != nil || attempt == nil {
		return
	}
	if attempt.State.CanTransition(models.AttemptPaymentFailed) {
		attempt.State = models.AttemptPaymentFailed
		if err := c.Attempts.Save(ctx, attempt); err != nil {
			utils.GetLogger().Warn("failed to record payment failure on attempt", zap.Error(err))
		}
	}
}

// closeAttempt walks the attempt to its confirmed terminal state.
func (c *DefaultBookingCoordinator) closeAttempt(ctx context.Context, paymentIntentID string) {
	attempt, err := c.Attempts.GetByIntent(ctx, paymentIntentID)
	if err != nil || attempt == nil {
		return
	}
	if attempt.State.CanTransition(models.AttemptPaymentConfirmed) {
		attempt.State = models.AttemptPaymentConfirmed
	}
	if attempt.State.CanTransition(models.AttemptBookingConfirmed) {
		attempt.State = models.AttemptBookingConfirmed
	}
	if err := c.Attempts.Save(ctx, attempt); err != nil {
		utils.GetLogger().Warn("failed to close booking attempt", zap.Error(err))
	}
}

func validateAvailabilityRequest(req models.AvailabilityRequest) error {
	if req.TripID == "" {
		return NewValidationError("missing trip id")
	}
	if req.ResourceID == "" {
		return NewValidationError("missing resource id")
	}
	if !req.ResourceType.Valid() {
		return NewValidationError(fmt.Sprintf("unknown resource type %q", req.ResourceType))
	}
	return validateDateRange(req.StartDate, req.EndDate)
}

func validateIntentRequest(req models.PaymentIntentRequest) error {
	if req.TripID == "" {
		return NewValidationError("missing trip id")
	}
	if req.ResourceID == "" {
		return NewValidationError("missing resource id")
	}
	if !req.ResourceType.Valid() {
		return NewValidationError(fmt.Sprintf("unknown resource type %q", req.ResourceType))
	}
	if req.Amount <= 0 {
		return NewValidationError("amount must be positive")
	}
	return validateDateRange(req.StartDate, req.EndDate)
}

// validateDateRange accepts an empty range (point-in-time resources).
func validateDateRange(start, end string) error {
	if start == "" && end == "" {
		return nil
	}
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return NewValidationError(fmt.Sprintf("malformed start date %q", start))
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return NewValidationError(fmt.Sprintf("malformed end date %q", end))
	}
	if endDate.Before(startDate) {
		return NewValidationError("end date is before start date")
	}
	return nil
}
