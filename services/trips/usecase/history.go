package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

// GetTrip returns a trip visible to its customer, its driver or an admin
func (uc *TripUC) GetTrip(ctx context.Context, tripID uuid.UUID, requester models.Principal) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	switch {
	case requester.Role == models.RoleAdmin:
	case requester.Role == models.RoleCustomer && trip.CustomerID == requester.UserID:
	case requester.Role == models.RoleDriver && trip.DriverID != nil && *trip.DriverID == requester.UserID:
	default:
		return nil, fmt.Errorf("%w: trip %s is not visible to %s", models.ErrForbidden, tripID, requester.Username)
	}

	return trip, nil
}

// ListCustomerTrips returns the customer's trips, newest first
func (uc *TripUC) ListCustomerTrips(ctx context.Context, customerID uuid.UUID) ([]*models.Trip, error) {
	return uc.tripRepo.ListTripsByCustomer(ctx, customerID)
}

// ListDriverTrips returns the driver's trips, newest first
func (uc *TripUC) ListDriverTrips(ctx context.Context, driverID uuid.UUID) ([]*models.Trip, error) {
	return uc.tripRepo.ListTripsByDriver(ctx, driverID)
}

// ListTripsByDateRange returns trips whose start time falls in [start, end]
func (uc *TripUC) ListTripsByDateRange(ctx context.Context, start, end time.Time) ([]*models.Trip, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end must not be before start", models.ErrValidation)
	}
	return uc.tripRepo.ListTripsByDateRange(ctx, start.UTC(), end.UTC())
}
