package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

// UserRepo defines the interface for user data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/cabbooking/services/users UserRepo
type UserRepo interface {
	// CreateUser inserts the user and, for drivers, the driver row in one transaction
	CreateUser(ctx context.Context, user *models.User) error
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// GetUserByID loads driver info and cab for drivers
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, lat, lng float64, geohash string) (*models.Driver, error)
	// UpsertCab creates the driver's cab or replaces its details, keeping availability
	UpsertCab(ctx context.Context, cab *models.Cab) error
	SetDriverVerified(ctx context.Context, driverID uuid.UUID, verified bool) (*models.Driver, error)
}
