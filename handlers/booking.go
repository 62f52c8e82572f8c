package handlers

import (
	"errors"
	"net/http"

	"voyago/models"
	"voyago/services/booking"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking confirmation flow: availability check,
// payment intent creation, and payment confirmation.
type BookingHandler struct {
	Coordinator booking.BookingCoordinator
}

// NewBookingHandler creates a BookingHandler around the coordinator.
func NewBookingHandler(coordinator booking.BookingCoordinator) *BookingHandler {
	return &BookingHandler{Coordinator: coordinator}
}

// CheckAvailability reports whether a resource can be reserved for a window.
// An unavailable resource is a normal outcome, not an error.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var input models.AvailabilityRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Coordinator.CheckAvailability(c.Request.Context(), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreatePaymentIntent stages a charge for a resource whose availability has
// been confirmed.
func (h *BookingHandler) CreatePaymentIntent(c *gin.Context) {
	var input models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Coordinator.CreatePaymentIntent(c.Request.Context(), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmPayment verifies the payment succeeded upstream and returns the
// confirmed booking. Safe to retry with the same payment intent id.
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	var input struct {
		PaymentIntentID string `json:"paymentIntentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	confirmed, err := h.Coordinator.ConfirmPayment(c.Request.Context(), input.PaymentIntentID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, confirmed)
}

// ListTripBookings returns all bookings recorded for a trip.
func (h *BookingHandler) ListTripBookings(c *gin.Context) {
	bookings, err := h.Coordinator.ListTripBookings(c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// respondBookingError maps coordinator error codes onto HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	var be *booking.BookingError
	if !errors.As(err, &be) {
		utils.JSONError(c, http.StatusInternalServerError, "booking request failed", err.Error())
		return
	}

	switch be.Code {
	case booking.CodeValidation:
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", be.Message)
	case booking.CodeNotFound:
		utils.JSONError(c, http.StatusNotFound, "not found", be.Message)
	case booking.CodeAuthorization:
		utils.JSONError(c, http.StatusForbidden, "not authorized", be.Message)
	case booking.CodeConflict:
		utils.JSONError(c, http.StatusConflict, "booking conflict", be.Message)
	case booking.CodeUpstreamPayment:
		c.JSON(http.StatusPaymentRequired, gin.H{
			"message":   "payment not completed",
			"details":   be.Message,
			"retryable": be.Retryable,
		})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "booking request failed", be.Message)
	}
}
