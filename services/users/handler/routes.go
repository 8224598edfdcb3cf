package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/internal/pkg/middleware"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/users/handler/http"
)

// Handler coordinates all protocol handlers for the users service
type Handler struct {
	userHandler *http.UserHandler
	redisClient *redis.Client
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	userHandler *http.UserHandler,
	redisClient *redis.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		userHandler: userHandler,
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// RegisterRoutes registers all user routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	driverOnly := middleware.RequireRole(models.RoleDriver)
	loginLimit := middleware.LoginRateLimiter(
		h.cfg.RateLimit.LoginPerPeriod,
		time.Duration(h.cfg.RateLimit.PeriodSec)*time.Second,
		h.redisClient,
	)

	authGroup := e.Group("/v1/auth")
	authGroup.POST("/register", h.userHandler.Register)
	authGroup.POST("/login", h.userHandler.Login, loginLimit)

	v1 := e.Group("/v1", auth)
	v1.GET("/users/me", h.userHandler.Me)
	v1.PUT("/drivers/me/location", h.userHandler.UpdateLocation, driverOnly)
	v1.PUT("/drivers/me/cab", h.userHandler.RegisterCab, driverOnly)
	v1.PUT("/admin/drivers/:driverID/verification", h.userHandler.SetVerification, middleware.RequireRole(models.RoleAdmin))

	internal := e.Group("/internal", middleware.ValidateAPIKey(h.cfg.APIKey.UsersService))
	internal.POST("/admins", h.userHandler.CreateAdmin)
}
