// File: voyago/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/config"
	"voyago/database"
	bookingRepoPkg "voyago/database/repository/booking"
	tripRepoPkg "voyago/database/repository/trip"
	"voyago/handlers"
	"voyago/middleware"
	"voyago/routes"
	"voyago/services/booking"
	"voyago/services/estimator"
	"voyago/services/itinerary"
	"voyago/services/trip"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	tripRepo := tripRepoPkg.NewMongoTripRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	tripService := &trip.DefaultTripService{
		Repo: tripRepo,
	}
	itineraryService := &itinerary.DefaultItineraryService{
		Repo: tripRepo,
	}
	simulationService := &estimator.DefaultSimulationService{
		Estimator:   estimator.NewEstimator(estimator.NewSeededPricingProvider()),
		TripRepo:    tripRepo,
		CacheClient: utils.GetCacheClient(),
	}
	coordinator := &booking.DefaultBookingCoordinator{
		Availability:    booking.NewSeededAvailabilityChecker(),
		Gateway:         booking.NewStripeGateway(),
		Attempts:        booking.NewRedisAttemptStore(utils.GetBookingCacheClient()),
		Repo:            bookingRepo,
		DefaultCurrency: config.AppConfig.DefaultCurrency,
	}

	tripHandler := handlers.NewTripHandler(tripService, itineraryService, simulationService)
	bookingHandler := handlers.NewBookingHandler(coordinator)

	// Register routes.
	routes.RegisterRoutes(router, tripHandler, bookingHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
