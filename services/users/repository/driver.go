package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

const driverQuery = `
	SELECT d.user_id, u.username, d.verified, d.is_available, d.rating, d.total_ratings,
		d.latitude, d.longitude, COALESCE(d.geohash, '') AS geohash
	FROM drivers d
	JOIN users u ON u.id = d.user_id
	WHERE d.user_id = $1
`

func (r *UserRepo) getDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	var driver models.Driver
	err := r.db.GetContext(ctx, &driver, driverQuery, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: driver %s", models.ErrNotFound, driverID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	var cab models.Cab
	err = r.db.GetContext(ctx, &cab,
		`SELECT id, driver_id, car_type, plate_number, per_km_rate, is_available FROM cabs WHERE driver_id = $1`,
		driverID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("failed to get cab: %w", err)
	default:
		driver.Cab = &cab
	}
	return &driver, nil
}

// UpdateDriverLocation stores the driver's position and its geohash cell
func (r *UserRepo) UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, lat, lng float64, geohash string) (*models.Driver, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE drivers SET latitude = $1, longitude = $2, geohash = $3, updated_at = now() WHERE user_id = $4`,
		lat, lng, geohash, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to update driver location: %w", err)
	}
	if err := requireOneRow(result, driverID); err != nil {
		return nil, err
	}
	return r.getDriver(ctx, driverID)
}

// UpsertCab creates the driver's cab or replaces its details. Availability
// of an existing cab is left alone since an active trip may hold it.
func (r *UserRepo) UpsertCab(ctx context.Context, cab *models.Cab) error {
	query := `
		INSERT INTO cabs (id, driver_id, car_type, plate_number, per_km_rate, is_available)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (driver_id) DO UPDATE
			SET car_type = EXCLUDED.car_type,
				plate_number = EXCLUDED.plate_number,
				per_km_rate = EXCLUDED.per_km_rate,
				updated_at = now()
		RETURNING id, is_available
	`
	row := r.db.QueryRowxContext(ctx, query,
		uuid.New(), cab.DriverID, cab.CarType, cab.PlateNumber, cab.PerKmRate, cab.IsAvailable)
	if err := row.Scan(&cab.ID, &cab.IsAvailable); err != nil {
		return fmt.Errorf("failed to upsert cab: %w", err)
	}
	return nil
}

// SetDriverVerified sets the verification flag and returns the updated driver
func (r *UserRepo) SetDriverVerified(ctx context.Context, driverID uuid.UUID, verified bool) (*models.Driver, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE drivers SET verified = $1, updated_at = now() WHERE user_id = $2`, verified, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to update driver verification: %w", err)
	}
	if err := requireOneRow(result, driverID); err != nil {
		return nil, err
	}
	return r.getDriver(ctx, driverID)
}

func requireOneRow(result sql.Result, driverID uuid.UUID) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: driver %s", models.ErrNotFound, driverID)
	}
	return nil
}
