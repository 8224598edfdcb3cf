package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
	nrpkg "github.com/piresc/cabbooking/internal/pkg/newrelic"
	"github.com/piresc/cabbooking/internal/pkg/observability"
	"github.com/piresc/cabbooking/internal/utils"
)

// BookTrip creates a trip for the customer. Future-dated requests are stored as
// SCHEDULED for the promoter; anything else is matched to a nearby driver now.
//
// Only the best-rated Trips.MaxReservationTries candidates are tried. If each
// of them is taken by a concurrent booking, ErrNoDriverAvailable is returned
// even when lower-ranked eligible drivers exist, so callers may retry.
func (uc *TripUC) BookTrip(ctx context.Context, customerID uuid.UUID, req models.BookTripRequest) (*models.Trip, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	customer, err := uc.tripRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	pickup := utils.GeoPoint{Latitude: req.FromLatitude, Longitude: req.FromLongitude}
	now := uc.now()
	trip := &models.Trip{
		ID:               uuid.New(),
		CustomerID:       customer.ID,
		CustomerUsername: customer.Username,
		FromLocation:     strings.TrimSpace(req.FromLocation),
		ToLocation:       strings.TrimSpace(req.ToLocation),
		DistanceKm:       req.DistanceKm,
		CarType:          strings.TrimSpace(req.CarType),
		FromLatitude:     req.FromLatitude,
		FromLongitude:    req.FromLongitude,
		PickupGeohash:    utils.EncodeLocation(pickup, utils.DefaultGeohashPrecision),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if req.ScheduledAt != nil && req.ScheduledAt.After(now) {
		scheduledAt := req.ScheduledAt.UTC()
		trip.Status = models.TripStatusScheduled
		trip.FromDateTime = &scheduledAt

		if err := uc.tripRepo.CreateTrip(ctx, trip); err != nil {
			return nil, fmt.Errorf("failed to create scheduled trip: %w", err)
		}
		uc.afterBooking(ctx, trip)
		return trip, nil
	}

	trip.Status = models.TripStatusConfirmed
	trip.FromDateTime = &now

	var driver *models.Driver
	err = nrpkg.WithSegment(ctx, "BookTrip.MatchDriver", func() error {
		var matchErr error
		driver, matchErr = uc.matchAndReserve(ctx, trip.CarType, &pickup, func(ctx context.Context, d *models.Driver) error {
			trip.AssignTo(d)
			return uc.tripRepo.CreateTripWithReservation(ctx, trip, d)
		})
		return matchErr
	})
	if err != nil {
		if errors.Is(err, models.ErrNoDriverAvailable) {
			observability.NoDriverAvailableTotal.Inc()
		}
		return nil, err
	}

	logger.InfoCtx(ctx, "Trip booked",
		logger.String("trip_id", trip.ID.String()),
		logger.String("driver_id", driver.UserID.String()),
		logger.String("car_type", trip.CarType))

	uc.afterBooking(ctx, trip)
	return trip, nil
}

func (uc *TripUC) afterBooking(ctx context.Context, trip *models.Trip) {
	observability.TripsBookedTotal.WithLabelValues(string(trip.Status)).Inc()
	if err := uc.tripGW.PublishTripBooked(ctx, trip); err != nil {
		logger.WarnCtx(ctx, "Failed to publish trip booked event",
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}
}
