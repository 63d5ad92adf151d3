package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/handler"
	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	BookingHandler     *handler.BookingHandler
	CatalogHandler     *handler.CatalogHandler
	ReservationHandler *handler.ReservationHandler
	RedisClient        *redis.Client
	NewRelicApp        *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
		router.Use(middleware.TransactionAttributes())
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Catalog routes.
		v1.GET("/vehicles", deps.CatalogHandler.GetVehicles)
		v1.GET("/locations", deps.CatalogHandler.GetLocations)
		v1.GET("/options", deps.CatalogHandler.GetOptions)

		// Booking wizard routes.
		booking := v1.Group("/booking")
		{
			booking.GET("", deps.BookingHandler.GetBooking)
			booking.DELETE("", deps.BookingHandler.ResetBooking)
			booking.PUT("/search", deps.BookingHandler.SetSearchParams)
			booking.PUT("/vehicle", deps.BookingHandler.SelectVehicle)
			booking.DELETE("/vehicle", deps.BookingHandler.ClearVehicle)
			booking.PUT("/payment-option", deps.BookingHandler.SetPaymentOption)
			booking.PUT("/mileage-option", deps.BookingHandler.SetMileageOption)
			booking.PUT("/protection", deps.BookingHandler.SetProtectionLevel)
			booking.POST("/options/:id/toggle", deps.BookingHandler.ToggleOption)
			booking.PUT("/driver", deps.BookingHandler.SetDriverInfo)
			booking.PUT("/payment-method", deps.BookingHandler.SetPaymentMethod)
			booking.POST("/next", deps.BookingHandler.NextStep)
			booking.POST("/prev", deps.BookingHandler.PrevStep)
			booking.PUT("/step", deps.BookingHandler.SetStep)
			booking.GET("/quote", deps.BookingHandler.GetQuote)
			booking.POST("/submit", deps.BookingHandler.Submit)
		}

		// Guest reservation management.
		v1.POST("/reservations/manage", deps.ReservationHandler.Manage)
	}

	return router
}
