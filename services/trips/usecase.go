package trips

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

// TripUC defines the interface for trip business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/cabbooking/services/trips TripUC
type TripUC interface {
	BookTrip(ctx context.Context, customerID uuid.UUID, req models.BookTripRequest) (*models.Trip, error)
	GetTrip(ctx context.Context, tripID uuid.UUID, requester models.Principal) (*models.Trip, error)
	UpdateTripStatus(ctx context.Context, tripID uuid.UUID, status models.TripStatus, driverUsername string) (*models.Trip, error)
	CompleteTrip(ctx context.Context, tripID uuid.UUID, driverUsername string) (*models.Trip, error)
	CancelTrip(ctx context.Context, tripID uuid.UUID, customerUsername string) (*models.Trip, error)
	RateTrip(ctx context.Context, tripID uuid.UUID, rating int, customerUsername string) (*models.Trip, error)
	ListCustomerTrips(ctx context.Context, customerID uuid.UUID) ([]*models.Trip, error)
	ListDriverTrips(ctx context.Context, driverID uuid.UUID) ([]*models.Trip, error)
	ListTripsByDateRange(ctx context.Context, start, end time.Time) ([]*models.Trip, error)
	AssignDriversToScheduledTrips(ctx context.Context) (models.SweepResult, error)
}
