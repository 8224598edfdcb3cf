package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

// driverCabRow is one driver joined with the cab they operate
type driverCabRow struct {
	models.Driver
	CabID          uuid.UUID `db:"cab_id"`
	CarType        string    `db:"car_type"`
	PlateNumber    string    `db:"plate_number"`
	PerKmRate      float64   `db:"per_km_rate"`
	CabIsAvailable bool      `db:"cab_is_available"`
}

func (r driverCabRow) toDriver() *models.Driver {
	d := r.Driver
	d.Cab = &models.Cab{
		ID:          r.CabID,
		DriverID:    d.UserID,
		CarType:     r.CarType,
		PlateNumber: r.PlateNumber,
		PerKmRate:   r.PerKmRate,
		IsAvailable: r.CabIsAvailable,
	}
	return &d
}

const eligibleDriversQuery = `
	SELECT
		d.user_id, u.username, d.verified, d.is_available, d.rating, d.total_ratings,
		d.latitude, d.longitude, COALESCE(d.geohash, '') AS geohash,
		c.id AS cab_id, c.car_type, c.plate_number, c.per_km_rate, c.is_available AS cab_is_available
	FROM drivers d
	JOIN users u ON u.id = d.user_id
	JOIN cabs c ON c.driver_id = d.user_id
	WHERE d.verified
		AND d.is_available
		AND c.is_available
		AND lower(c.car_type) = lower($1)
		AND d.latitude IS NOT NULL
		AND d.longitude IS NOT NULL
		AND NOT EXISTS (
			SELECT 1 FROM trips t WHERE t.driver_id = d.user_id AND t.status = ANY($2)
		)
	ORDER BY d.rating DESC NULLS LAST
`

// FindEligibleDrivers returns the drivers that could take a trip of carType right now
func (r *TripRepo) FindEligibleDrivers(ctx context.Context, carType string) ([]*models.Driver, error) {
	var rows []driverCabRow
	if err := r.db.SelectContext(ctx, &rows, eligibleDriversQuery, carType, pq.Array(activeStatuses())); err != nil {
		return nil, fmt.Errorf("failed to query eligible drivers: %w", err)
	}

	drivers := make([]*models.Driver, 0, len(rows))
	for _, row := range rows {
		drivers = append(drivers, row.toDriver())
	}
	return drivers, nil
}

// FindCustomerByID returns the customer account with the given id
func (r *TripRepo) FindCustomerByID(ctx context.Context, customerID uuid.UUID) (*models.Customer, error) {
	query := `SELECT id, username, email FROM users WHERE id = $1 AND role = $2`

	var customer models.Customer
	err := r.db.GetContext(ctx, &customer, query, customerID, models.RoleCustomer)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: customer %s", models.ErrNotFound, customerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

// reserve flips driver and cab to unavailable only if both are still free
func reserve(ctx context.Context, tx *sqlx.Tx, driver *models.Driver) error {
	if driver.Cab == nil {
		return fmt.Errorf("%w: driver %s has no cab", models.ErrDriverReserved, driver.UserID)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE drivers SET is_available = false, updated_at = now()
		 WHERE user_id = $1 AND is_available AND verified`,
		driver.UserID)
	if err := expectOneRow(res, err, "reserve driver"); err != nil {
		return err
	}

	res, err = tx.ExecContext(ctx,
		`UPDATE cabs SET is_available = false, updated_at = now()
		 WHERE id = $1 AND driver_id = $2 AND is_available`,
		driver.Cab.ID, driver.UserID)
	if err := expectOneRow(res, err, "reserve cab"); err != nil {
		return err
	}

	driver.IsAvailable = false
	driver.Cab.IsAvailable = false
	return nil
}

// release makes the trip's driver and cab assignable again
func release(ctx context.Context, tx *sqlx.Tx, trip *models.Trip) error {
	if trip.DriverID != nil {
		if _, err := tx.ExecContext(ctx,
			`UPDATE drivers SET is_available = true, updated_at = now() WHERE user_id = $1`,
			*trip.DriverID); err != nil {
			return fmt.Errorf("failed to release driver: %w", err)
		}
	}
	if trip.CabID != nil {
		if _, err := tx.ExecContext(ctx,
			`UPDATE cabs SET is_available = true, updated_at = now() WHERE id = $1`,
			*trip.CabID); err != nil {
			return fmt.Errorf("failed to release cab: %w", err)
		}
	}
	return nil
}

func expectOneRow(res sql.Result, err error, op string) error {
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return models.ErrDriverReserved
	}
	return nil
}

func activeStatuses() []string {
	statuses := make([]string, 0, len(models.ActiveTripStatuses))
	for _, s := range models.ActiveTripStatuses {
		statuses = append(statuses, string(s))
	}
	return statuses
}
