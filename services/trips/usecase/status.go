package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/internal/pkg/observability"
)

// UpdateTripStatus moves a trip to status on behalf of its assigned driver
func (uc *TripUC) UpdateTripStatus(ctx context.Context, tripID uuid.UUID, status models.TripStatus, driverUsername string) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if !trip.IsDrivenBy(driverUsername) {
		return nil, fmt.Errorf("%w: trip %s is not assigned to driver %s", models.ErrForbidden, tripID, driverUsername)
	}

	return uc.transition(ctx, trip, status)
}

// CompleteTrip finishes an in-progress trip and bills it
func (uc *TripUC) CompleteTrip(ctx context.Context, tripID uuid.UUID, driverUsername string) (*models.Trip, error) {
	return uc.UpdateTripStatus(ctx, tripID, models.TripStatusCompleted, driverUsername)
}

// CancelTrip lets the booking customer cancel a trip that has not started
func (uc *TripUC) CancelTrip(ctx context.Context, tripID uuid.UUID, customerUsername string) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if trip.CustomerUsername != customerUsername {
		return nil, fmt.Errorf("%w: trip %s does not belong to customer %s", models.ErrForbidden, tripID, customerUsername)
	}
	if trip.Status != models.TripStatusScheduled && trip.Status != models.TripStatusConfirmed {
		return nil, fmt.Errorf("%w: trip in status %s can no longer be cancelled by the customer", models.ErrIllegalState, trip.Status)
	}

	return uc.transition(ctx, trip, models.TripStatusCancelled)
}

// transition applies one legal status change, billing on completion. The
// repository releases driver and cab for terminal states.
func (uc *TripUC) transition(ctx context.Context, trip *models.Trip, next models.TripStatus) (*models.Trip, error) {
	from := trip.Status
	if !from.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: trip %s is %s and cannot move to %s", models.ErrIllegalState, trip.ID, from, next)
	}

	now := uc.now()
	trip.Status = next
	trip.UpdatedAt = now
	if next == models.TripStatusCompleted {
		trip.ToDateTime = &now
		trip.Bill = trip.ComputeBill()
	}

	if err := uc.tripRepo.UpdateTripStatus(ctx, trip, from); err != nil {
		return nil, err
	}

	observability.TripTransitionsTotal.WithLabelValues(string(from), string(next)).Inc()
	logger.InfoCtx(ctx, "Trip status updated",
		logger.String("trip_id", trip.ID.String()),
		logger.String("from", string(from)),
		logger.String("to", string(next)),
		logger.Float64("bill", trip.Bill))

	if err := uc.tripGW.PublishTripStatusChanged(ctx, trip); err != nil {
		logger.WarnCtx(ctx, "Failed to publish trip status event",
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}

	return trip, nil
}
