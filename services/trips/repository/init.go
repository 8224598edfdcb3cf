package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

// TripRepo implements trips.TripRepo on Postgres
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}
