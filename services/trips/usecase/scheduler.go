package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/internal/pkg/observability"
)

// AssignDriversToScheduledTrips promotes SCHEDULED trips starting within the
// lookahead window. Each trip is matched and committed on its own, so one
// failing trip never blocks the rest. Trips without a free driver stay
// SCHEDULED for the next sweep. Only loading the due trips can fail the sweep.
func (uc *TripUC) AssignDriversToScheduledTrips(ctx context.Context) (models.SweepResult, error) {
	var result models.SweepResult

	due, err := uc.tripRepo.ListDueScheduledTrips(ctx, uc.now().Add(uc.lookahead()))
	if err != nil {
		return result, fmt.Errorf("failed to list due scheduled trips: %w", err)
	}
	result.Due = len(due)

	for _, trip := range due {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		promoted, err := uc.promoteScheduledTrip(ctx, trip)
		switch {
		case err != nil:
			result.Failed++
			observability.SweepFailuresTotal.Inc()
			logger.ErrorCtx(ctx, "Failed to promote scheduled trip",
				logger.String("trip_id", trip.ID.String()),
				logger.Err(err))
		case promoted:
			result.Promoted++
			observability.SweepPromotedTotal.Inc()
		default:
			result.Unmatched++
		}
	}

	return result, nil
}

// promoteScheduledTrip draws from every eligible driver of the trip's car
// type. Unlike immediate bookings no pickup radius applies.
func (uc *TripUC) promoteScheduledTrip(ctx context.Context, trip *models.Trip) (promoted bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while promoting trip: %v", r)
		}
	}()

	driver, err := uc.matchAndReserve(ctx, trip.CarType, nil, func(ctx context.Context, d *models.Driver) error {
		candidate := *trip
		candidate.AssignTo(d)
		candidate.Status = models.TripStatusConfirmed
		candidate.UpdatedAt = uc.now()
		if err := uc.tripRepo.AssignScheduledTrip(ctx, &candidate, d); err != nil {
			return err
		}
		*trip = candidate
		return nil
	})
	if errors.Is(err, models.ErrNoDriverAvailable) {
		logger.DebugCtx(ctx, "No driver available for scheduled trip yet",
			logger.String("trip_id", trip.ID.String()),
			logger.String("car_type", trip.CarType))
		return false, nil
	}
	if err != nil {
		return false, err
	}

	logger.InfoCtx(ctx, "Scheduled trip confirmed",
		logger.String("trip_id", trip.ID.String()),
		logger.String("driver_id", driver.UserID.String()))

	if err := uc.tripGW.PublishTripStatusChanged(ctx, trip); err != nil {
		logger.WarnCtx(ctx, "Failed to publish trip confirmed event",
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}
	return true, nil
}
