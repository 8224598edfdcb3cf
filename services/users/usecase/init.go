package usecase

import (
	"time"

	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/users"
	"golang.org/x/crypto/bcrypt"
)

// UserUC implements the user use case interface
type UserUC struct {
	cfg        *models.Config
	userRepo   users.UserRepo
	userGW     users.UserGW
	now        func() time.Time
	bcryptCost int
}

// NewUserUC creates a new user use case
func NewUserUC(
	cfg *models.Config,
	userRepo users.UserRepo,
	userGW users.UserGW,
) *UserUC {
	return &UserUC{
		cfg:        cfg,
		userRepo:   userRepo,
		userGW:     userGW,
		now:        models.Now,
		bcryptCost: bcrypt.DefaultCost,
	}
}
