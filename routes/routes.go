package routes

import (
	"net/http"
	"time"

	"voyago/handlers"
	"voyago/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, tripHandler *handlers.TripHandler, bookingHandler *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterTripRoutes(r, tripHandler)
	RegisterBookingRoutes(r, bookingHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Voyago"})
	})
}

// RegisterTripRoutes registers trip, itinerary and simulation endpoints.
func RegisterTripRoutes(r *gin.Engine, h *handlers.TripHandler) {
	api := r.Group("/api/trips")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("", h.CreateTrip)
		api.GET("/:id", h.GetTrip)
		api.PATCH("/:id/selection", h.SelectOptions)

		api.POST("/:id/destinations", h.AddDestination)
		api.DELETE("/:id/destinations/:index", h.RemoveDestination)
		api.PUT("/:id/destinations/reorder", h.ReorderDestinations)
		api.PUT("/:id/destinations/:index/dates", h.UpdateDestinationDate)

		api.POST("/:id/simulate", h.SimulateCost)
	}
}

// RegisterBookingRoutes registers the booking confirmation flow.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("/availability", h.CheckAvailability)
		api.POST("/payment-intent", h.CreatePaymentIntent)
		api.POST("/confirm", h.ConfirmPayment)
		api.GET("/trip/:id", h.ListTripBookings)
	}
}
