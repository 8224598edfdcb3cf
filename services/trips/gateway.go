package trips

import (
	"context"

	"github.com/piresc/cabbooking/internal/pkg/models"
)

// TripGW defines the interface for trip event publishing
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/cabbooking/services/trips TripGW
type TripGW interface {
	PublishTripBooked(ctx context.Context, trip *models.Trip) error
	PublishTripStatusChanged(ctx context.Context, trip *models.Trip) error
	PublishTripRated(ctx context.Context, trip *models.Trip) error
}
