package trips

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

// TripRepo defines the interface for trip data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/cabbooking/services/trips TripRepo
type TripRepo interface {
	FindCustomerByID(ctx context.Context, customerID uuid.UUID) (*models.Customer, error)
	// FindEligibleDrivers returns verified, available drivers with a located cab of carType
	FindEligibleDrivers(ctx context.Context, carType string) ([]*models.Driver, error)

	CreateTrip(ctx context.Context, trip *models.Trip) error
	// CreateTripWithReservation reserves driver and cab and inserts trip atomically.
	// Returns models.ErrDriverReserved when the driver or cab is no longer free.
	CreateTripWithReservation(ctx context.Context, trip *models.Trip, driver *models.Driver) error
	// AssignScheduledTrip reserves driver and cab and promotes a SCHEDULED trip to CONFIRMED
	AssignScheduledTrip(ctx context.Context, trip *models.Trip, driver *models.Driver) error
	// UpdateTripStatus persists trip when its stored status still equals from,
	// releasing driver and cab when trip.Status is terminal
	UpdateTripStatus(ctx context.Context, trip *models.Trip, from models.TripStatus) error
	// RateTrip records the rating once and folds it into the driver's average
	RateTrip(ctx context.Context, trip *models.Trip, rating int) (*models.Driver, error)

	GetTripByID(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	ListDueScheduledTrips(ctx context.Context, before time.Time) ([]*models.Trip, error)
	ListTripsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*models.Trip, error)
	ListTripsByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Trip, error)
	ListTripsByDateRange(ctx context.Context, start, end time.Time) ([]*models.Trip, error)
}
