package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/internal/pkg/middleware"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/trips/handler/http"
)

// Handler coordinates all protocol handlers for the trips service
type Handler struct {
	tripHandler *http.TripHandler
	redisClient *redis.Client
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	tripHandler *http.TripHandler,
	redisClient *redis.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		tripHandler: tripHandler,
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// RegisterRoutes registers all trip routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	customerOnly := middleware.RequireRole(models.RoleCustomer)
	driverOnly := middleware.RequireRole(models.RoleDriver)
	bookingLimit := middleware.BookingRateLimiter(
		h.cfg.RateLimit.BookingPerPeriod,
		time.Duration(h.cfg.RateLimit.PeriodSec)*time.Second,
		h.redisClient,
	)

	v1 := e.Group("/v1", auth)

	tripGroup := v1.Group("/trips")
	tripGroup.POST("", h.tripHandler.BookTrip, customerOnly, bookingLimit)
	tripGroup.GET("/:tripID", h.tripHandler.GetTrip)
	tripGroup.PUT("/:tripID/status", h.tripHandler.UpdateTripStatus, driverOnly)
	tripGroup.POST("/:tripID/complete", h.tripHandler.CompleteTrip, driverOnly)
	tripGroup.POST("/:tripID/cancel", h.tripHandler.CancelTrip, customerOnly)
	tripGroup.POST("/:tripID/rating", h.tripHandler.RateTrip, customerOnly)

	v1.GET("/customers/me/trips", h.tripHandler.ListMyTrips, customerOnly)
	v1.GET("/drivers/me/trips", h.tripHandler.ListMyTrips, driverOnly)
	v1.GET("/admin/trips", h.tripHandler.ListTripsByDateRange, middleware.RequireRole(models.RoleAdmin))

	internal := e.Group("/internal", middleware.ValidateAPIKey(h.cfg.APIKey.TripsService))
	internal.POST("/trips/sweep", h.tripHandler.RunSweep)
}
