package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

// UserUC defines the interface for account, driver and cab management
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/cabbooking/services/users UserUC
type UserUC interface {
	// Register creates a customer or driver account
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	CreateAdmin(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)

	UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, req models.DriverLocationRequest) (*models.Driver, error)
	RegisterCab(ctx context.Context, driverID uuid.UUID, req models.CabRequest) (*models.Cab, error)
	SetDriverVerified(ctx context.Context, driverID uuid.UUID, verified bool) (*models.Driver, error)
}
