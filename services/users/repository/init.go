package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

// UserRepo implements users.UserRepo on Postgres
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}
