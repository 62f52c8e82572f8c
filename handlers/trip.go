package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"voyago/middleware"
	"voyago/models"
	"voyago/services/estimator"
	"voyago/services/itinerary"
	"voyago/services/trip"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// TripHandler exposes trip, itinerary and simulation endpoints.
type TripHandler struct {
	TripSvc       trip.TripService
	ItinerarySvc  itinerary.ItineraryService
	SimulationSvc estimator.SimulationService
}

// NewTripHandler creates a TripHandler with its service dependencies.
func NewTripHandler(tripSvc trip.TripService, itinerarySvc itinerary.ItineraryService, simulationSvc estimator.SimulationService) *TripHandler {
	return &TripHandler{
		TripSvc:       tripSvc,
		ItinerarySvc:  itinerarySvc,
		SimulationSvc: simulationSvc,
	}
}

// CreateTrip creates a new draft trip for the acting user.
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var input struct {
		Name      string  `json:"name" binding:"required"`
		StartDate string  `json:"startDate"`
		EndDate   string  `json:"endDate"`
		Budget    float64 `json:"budget"`
		Currency  string  `json:"currency"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	start, ok := parseOptionalDate(c, input.StartDate, "startDate")
	if !ok {
		return
	}
	end, ok := parseOptionalDate(c, input.EndDate, "endDate")
	if !ok {
		return
	}

	created, err := h.TripSvc.CreateTrip(middleware.ActingUserID(c), input.Name, start, end, input.Budget, input.Currency)
	if err != nil {
		if errors.Is(err, trip.ErrInvalidTripDates) {
			utils.JSONError(c, http.StatusBadRequest, "invalid trip dates", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create trip", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetTrip returns a trip owned by the acting user.
func (h *TripHandler) GetTrip(c *gin.Context) {
	found, err := h.TripSvc.GetTrip(middleware.ActingUserID(c), c.Param("id"))
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// SelectOptions persists the chosen flight/hotel option ids on the trip.
func (h *TripHandler) SelectOptions(c *gin.Context) {
	var input struct {
		SelectedFlightID *string `json:"selectedFlightId"`
		SelectedHotelID  *string `json:"selectedHotelId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.SelectedFlightID == nil && input.SelectedHotelID == nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "no selection provided")
		return
	}

	updated, err := h.TripSvc.SelectOptions(middleware.ActingUserID(c), c.Param("id"), input.SelectedFlightID, input.SelectedHotelID)
	if err != nil {
		if errors.Is(err, trip.ErrUnknownSelection) {
			utils.JSONError(c, http.StatusBadRequest, "unknown selection", err.Error())
			return
		}
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AddDestination appends a destination to the trip's itinerary.
func (h *TripHandler) AddDestination(c *gin.Context) {
	var input struct {
		City          string `json:"city" binding:"required"`
		Country       string `json:"country" binding:"required"`
		ArrivalDate   string `json:"arrivalDate"`
		DepartureDate string `json:"departureDate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	arrival, ok := parseOptionalDate(c, input.ArrivalDate, "arrivalDate")
	if !ok {
		return
	}
	departure, ok := parseOptionalDate(c, input.DepartureDate, "departureDate")
	if !ok {
		return
	}

	list, err := h.ItinerarySvc.AddDestination(middleware.ActingUserID(c), c.Param("id"), input.City, input.Country, arrival, departure)
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": list})
}

// RemoveDestination deletes the destination at the given index.
func (h *TripHandler) RemoveDestination(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid index", err.Error())
		return
	}

	list, err := h.ItinerarySvc.RemoveDestination(middleware.ActingUserID(c), c.Param("id"), index)
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": list})
}

// ReorderDestinations moves one destination to a new position.
func (h *TripHandler) ReorderDestinations(c *gin.Context) {
	var input struct {
		FromIndex int `json:"fromIndex"`
		ToIndex   int `json:"toIndex"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	list, err := h.ItinerarySvc.ReorderDestinations(middleware.ActingUserID(c), c.Param("id"), input.FromIndex, input.ToIndex)
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": list})
}

// UpdateDestinationDate sets one date field on a destination.
func (h *TripHandler) UpdateDestinationDate(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid index", err.Error())
		return
	}

	var input struct {
		Field string `json:"field" binding:"required"`
		Date  string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	field := itinerary.DateField(input.Field)
	if field != itinerary.FieldArrival && field != itinerary.FieldDeparture {
		utils.JSONError(c, http.StatusBadRequest, "invalid field", "field must be arrival or departure")
		return
	}
	date, err := time.Parse(dateLayout, input.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	list, err := h.ItinerarySvc.UpdateDestinationDate(middleware.ActingUserID(c), c.Param("id"), index, field, date)
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": list})
}

// SimulateCost runs a cost simulation over the requested route and attaches
// the resulting snapshot to the trip.
func (h *TripHandler) SimulateCost(c *gin.Context) {
	var input models.CostSimulationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sim, err := h.SimulationSvc.Simulate(middleware.ActingUserID(c), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, estimator.ErrMalformedDate) || errors.Is(err, estimator.ErrInvalidDateRange) {
			utils.JSONError(c, http.StatusBadRequest, "invalid simulation request", err.Error())
			return
		}
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, sim)
}

// respondTripError maps service failures onto HTTP statuses.
func respondTripError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, trip.ErrNotTripOwner),
		errors.Is(err, itinerary.ErrNotTripOwner),
		errors.Is(err, estimator.ErrNotTripOwner):
		utils.JSONError(c, http.StatusForbidden, "not trip owner", err.Error())
	case strings.Contains(err.Error(), "not found"):
		utils.JSONError(c, http.StatusNotFound, "trip not found", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "request failed", err.Error())
	}
}

// parseOptionalDate parses a "YYYY-MM-DD" value, writing a 400 response on
// failure. The second return is false when a response was already written.
func parseOptionalDate(c *gin.Context, value, name string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name, err.Error())
		return nil, false
	}
	return &parsed, true
}
