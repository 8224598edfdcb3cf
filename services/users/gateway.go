package users

import (
	"context"

	"github.com/piresc/cabbooking/internal/pkg/models"
)

// UserGW defines the interface for user event publishing
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/cabbooking/services/users UserGW
type UserGW interface {
	PublishDriverVerified(ctx context.Context, driver *models.Driver) error
}
