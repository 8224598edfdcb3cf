package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/middleware"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/internal/utils"
	"github.com/piresc/cabbooking/services/trips"
)

// TripHandler handles HTTP requests for trip operations
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
	}
}

// BookTrip handles trip booking requests from customers
func (h *TripHandler) BookTrip(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.BookTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.tripUC.BookTrip(c.Request().Context(), principal.UserID, req)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to book trip",
			logger.String("customer_id", principal.UserID.String()),
			logger.String("car_type", req.CarType),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip booked successfully", trip)
}

// GetTrip returns one trip visible to the caller
func (h *TripHandler) GetTrip(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), tripID, *principal)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", trip)
}

// UpdateTripStatus lets the assigned driver move the trip along its lifecycle
func (h *TripHandler) UpdateTripStatus(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.UpdateTripStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	status, err := models.ParseTripStatus(req.Status)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	trip, err := h.tripUC.UpdateTripStatus(c.Request().Context(), tripID, status, principal.Username)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip status updated successfully", trip)
}

// CompleteTrip finishes the trip and returns it with its bill
func (h *TripHandler) CompleteTrip(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.CompleteTrip(c.Request().Context(), tripID, principal.Username)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip completed successfully", trip)
}

// CancelTrip lets the customer cancel a trip that has not started
func (h *TripHandler) CancelTrip(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.CancelTrip(c.Request().Context(), tripID, principal.Username)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip cancelled successfully", trip)
}

// RateTrip records the customer's rating of a completed trip
func (h *TripHandler) RateTrip(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.RateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.tripUC.RateTrip(c.Request().Context(), tripID, req.Rating, principal.Username)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip rated successfully", trip)
}

// ListMyTrips returns the caller's trips as customer or driver
func (h *TripHandler) ListMyTrips(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var (
		result []*models.Trip
		err    error
	)
	switch principal.Role {
	case models.RoleCustomer:
		result, err = h.tripUC.ListCustomerTrips(c.Request().Context(), principal.UserID)
	case models.RoleDriver:
		result, err = h.tripUC.ListDriverTrips(c.Request().Context(), principal.UserID)
	default:
		return utils.ForbiddenResponse(c, "Only customers and drivers have trips")
	}
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", result)
}

// ListTripsByDateRange is the admin report of trips starting in [start, end].
// Both bounds are RFC3339 query parameters.
func (h *TripHandler) ListTripsByDateRange(c echo.Context) error {
	start, err := time.Parse(time.RFC3339, c.QueryParam("start"))
	if err != nil {
		return utils.BadRequestResponse(c, "start must be an RFC3339 timestamp")
	}
	end, err := time.Parse(time.RFC3339, c.QueryParam("end"))
	if err != nil {
		return utils.BadRequestResponse(c, "end must be an RFC3339 timestamp")
	}

	result, err := h.tripUC.ListTripsByDateRange(c.Request().Context(), start, end)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", result)
}

// RunSweep triggers one scheduled-trip sweep outside the ticker
func (h *TripHandler) RunSweep(c echo.Context) error {
	result, err := h.tripUC.AssignDriversToScheduledTrips(c.Request().Context())
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Manual sweep failed", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Sweep completed", result)
}
