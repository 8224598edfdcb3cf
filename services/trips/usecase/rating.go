package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/internal/pkg/observability"
)

const (
	minRating = 1
	maxRating = 5
)

// RateTrip records the customer's rating of a completed trip and updates the
// driver's running average. A trip can be rated once.
func (uc *TripUC) RateTrip(ctx context.Context, tripID uuid.UUID, rating int, customerUsername string) (*models.Trip, error) {
	if rating < minRating || rating > maxRating {
		return nil, fmt.Errorf("%w: got %d", models.ErrInvalidRating, rating)
	}

	trip, err := uc.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if trip.CustomerUsername != customerUsername {
		return nil, fmt.Errorf("%w: trip %s does not belong to customer %s", models.ErrForbidden, tripID, customerUsername)
	}
	if trip.Status != models.TripStatusCompleted {
		return nil, fmt.Errorf("%w: trip must be completed before it is rated, current status is %s", models.ErrIllegalState, trip.Status)
	}
	if trip.CustomerRating != nil {
		return nil, fmt.Errorf("%w: trip %s is already rated", models.ErrIllegalState, tripID)
	}
	if trip.DriverID == nil {
		return nil, fmt.Errorf("%w: trip %s has no driver to rate", models.ErrIllegalState, tripID)
	}

	driver, err := uc.tripRepo.RateTrip(ctx, trip, rating)
	if err != nil {
		return nil, err
	}

	trip.CustomerRating = &rating
	trip.UpdatedAt = uc.now()

	observability.TripRatingsTotal.WithLabelValues(strconv.Itoa(rating)).Inc()
	logger.InfoCtx(ctx, "Trip rated",
		logger.String("trip_id", trip.ID.String()),
		logger.String("driver_id", driver.UserID.String()),
		logger.Int("rating", rating),
		logger.Float64("driver_rating", driver.RatingValue()),
		logger.Int("driver_total_ratings", driver.TotalRatings))

	if err := uc.tripGW.PublishTripRated(ctx, trip); err != nil {
		logger.WarnCtx(ctx, "Failed to publish trip rated event",
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}

	return trip, nil
}
