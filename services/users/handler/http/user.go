package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/middleware"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/internal/utils"
	"github.com/piresc/cabbooking/services/users"
)

// UserHandler handles HTTP requests for accounts, drivers and cabs
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// Register creates a customer or driver account
func (h *UserHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.Register(c.Request().Context(), req)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to register account",
			logger.String("username", req.Username),
			logger.String("role", string(req.Role)),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account registered successfully", user)
}

// CreateAdmin creates an admin account from an internal caller
func (h *UserHandler) CreateAdmin(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.CreateAdmin(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Admin created successfully", user)
}

// Login exchanges credentials for a bearer token
func (h *UserHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Username == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "username and password are required")
	}

	resp, err := h.userUC.Login(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Me returns the caller's own account
func (h *UserHandler) Me(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), principal.UserID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateLocation records the calling driver's position
func (h *UserHandler) UpdateLocation(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.DriverLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	driver, err := h.userUC.UpdateDriverLocation(c.Request().Context(), principal.UserID, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", driver)
}

// RegisterCab creates or updates the calling driver's cab
func (h *UserHandler) RegisterCab(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CabRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	cab, err := h.userUC.RegisterCab(c.Request().Context(), principal.UserID, req)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to register cab",
			logger.String("driver_id", principal.UserID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Cab registered successfully", cab)
}

// SetVerification lets an admin verify or suspend a driver
func (h *UserHandler) SetVerification(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var req models.VerificationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	driver, err := h.userUC.SetDriverVerified(c.Request().Context(), driverID, req.Verified)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver verification updated", driver)
}
