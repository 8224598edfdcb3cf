package usecase

import (
	"time"

	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/trips"
)

// TripUC implements the trip use case interface
type TripUC struct {
	cfg      *models.Config
	tripRepo trips.TripRepo
	tripGW   trips.TripGW
	now      func() time.Time
}

// NewTripUC creates a new trip use case
func NewTripUC(
	cfg *models.Config,
	tripRepo trips.TripRepo,
	tripGW trips.TripGW,
) *TripUC {
	return &TripUC{
		cfg:      cfg,
		tripRepo: tripRepo,
		tripGW:   tripGW,
		now:      models.Now,
	}
}

func (uc *TripUC) maxReservationTries() int {
	if uc.cfg.Trips.MaxReservationTries <= 0 {
		return 1
	}
	return uc.cfg.Trips.MaxReservationTries
}

func (uc *TripUC) lookahead() time.Duration {
	return time.Duration(uc.cfg.Trips.LookaheadMinutes) * time.Minute
}
