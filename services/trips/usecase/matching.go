package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/internal/pkg/observability"
	"github.com/piresc/cabbooking/internal/utils"
)

// rankCandidates orders eligible drivers by rating, best first. When pickup is
// non-nil, drivers farther than radiusKm from it are dropped.
func rankCandidates(drivers []*models.Driver, carType string, pickup *utils.GeoPoint, radiusKm float64) []*models.Driver {
	ranked := make([]*models.Driver, 0, len(drivers))
	for _, d := range drivers {
		if !d.IsEligibleFor(carType) {
			continue
		}
		if pickup != nil {
			dist := utils.CalculateDistance(*pickup, utils.GeoPoint{Latitude: *d.Latitude, Longitude: *d.Longitude})
			if dist > radiusKm {
				continue
			}
		}
		ranked = append(ranked, d)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RatingValue() > ranked[j].RatingValue()
	})
	return ranked
}

// reserveFunc persists a reservation of driver for the trip being matched
type reserveFunc func(ctx context.Context, driver *models.Driver) error

// matchAndReserve walks the ranked candidates and reserves the first one whose
// compare-and-set succeeds, up to the configured number of attempts.
func (uc *TripUC) matchAndReserve(ctx context.Context, carType string, pickup *utils.GeoPoint, reserve reserveFunc) (*models.Driver, error) {
	start := time.Now()
	defer func() {
		observability.MatchLatency.Observe(time.Since(start).Seconds())
	}()

	drivers, err := uc.tripRepo.FindEligibleDrivers(ctx, carType)
	if err != nil {
		return nil, fmt.Errorf("failed to find eligible drivers: %w", err)
	}

	candidates := rankCandidates(drivers, carType, pickup, uc.cfg.Trips.NearbyRadiusKm)
	if len(candidates) > uc.maxReservationTries() {
		candidates = candidates[:uc.maxReservationTries()]
	}

	for _, driver := range candidates {
		err := reserve(ctx, driver)
		if err == nil {
			return driver, nil
		}
		if !errors.Is(err, models.ErrDriverReserved) {
			return nil, err
		}
		observability.ReservationConflictsTotal.Inc()
		logger.DebugCtx(ctx, "Driver taken by a concurrent booking, trying next candidate",
			logger.String("driver_id", driver.UserID.String()))
	}

	return nil, fmt.Errorf("%w for car type %s", models.ErrNoDriverAvailable, carType)
}
