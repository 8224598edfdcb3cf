package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

const tripColumns = `
	t.id, t.customer_id, cu.username AS customer_username,
	t.driver_id, du.username AS driver_username, t.cab_id, t.per_km_rate,
	t.from_location, t.to_location, t.from_date_time, t.to_date_time,
	t.distance_km, t.car_type, t.status, t.bill, t.customer_rating,
	t.from_latitude, t.from_longitude, COALESCE(t.pickup_geohash, '') AS pickup_geohash,
	t.created_at, t.updated_at
`

const tripFrom = `
	FROM trips t
	JOIN users cu ON cu.id = t.customer_id
	LEFT JOIN users du ON du.id = t.driver_id
`

const insertTripQuery = `
	INSERT INTO trips (
		id, customer_id, driver_id, cab_id, per_km_rate,
		from_location, to_location, from_date_time, to_date_time,
		distance_km, car_type, status, bill, customer_rating,
		from_latitude, from_longitude, pickup_geohash, created_at, updated_at
	) VALUES (
		:id, :customer_id, :driver_id, :cab_id, :per_km_rate,
		:from_location, :to_location, :from_date_time, :to_date_time,
		:distance_km, :car_type, :status, :bill, :customer_rating,
		:from_latitude, :from_longitude, :pickup_geohash, :created_at, :updated_at
	)
`

// CreateTrip inserts a trip without touching driver availability
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	if _, err := r.db.NamedExecContext(ctx, insertTripQuery, trip); err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	return nil
}

// CreateTripWithReservation reserves the driver and cab then inserts the trip
// in one transaction
func (r *TripRepo) CreateTripWithReservation(ctx context.Context, trip *models.Trip, driver *models.Driver) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := reserve(ctx, tx, driver); err != nil {
		return err
	}

	if _, err := tx.NamedExecContext(ctx, insertTripQuery, trip); err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// AssignScheduledTrip reserves the driver and cab and confirms the trip in one
// transaction. The trip must still be SCHEDULED and unassigned.
func (r *TripRepo) AssignScheduledTrip(ctx context.Context, trip *models.Trip, driver *models.Driver) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := reserve(ctx, tx, driver); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE trips
		SET driver_id = $1, cab_id = $2, per_km_rate = $3, status = $4, updated_at = $5
		WHERE id = $6 AND status = $7 AND driver_id IS NULL`,
		trip.DriverID, trip.CabID, trip.PerKmRate, models.TripStatusConfirmed, trip.UpdatedAt,
		trip.ID, models.TripStatusScheduled)
	if err != nil {
		return fmt.Errorf("failed to assign scheduled trip: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	} else if n == 0 {
		return fmt.Errorf("%w: trip %s is no longer scheduled", models.ErrIllegalState, trip.ID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateTripStatus writes the new status only if the stored status is still
// from. Terminal statuses release the driver and cab in the same transaction.
func (r *TripRepo) UpdateTripStatus(ctx context.Context, trip *models.Trip, from models.TripStatus) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE trips
		SET status = $1, to_date_time = $2, bill = $3, updated_at = $4
		WHERE id = $5 AND status = $6`,
		trip.Status, trip.ToDateTime, trip.Bill, trip.UpdatedAt, trip.ID, from)
	if err != nil {
		return fmt.Errorf("failed to update trip status: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	} else if n == 0 {
		return fmt.Errorf("%w: trip %s changed status concurrently, expected %s", models.ErrIllegalState, trip.ID, from)
	}

	if trip.Status.IsTerminal() {
		if err := release(ctx, tx, trip); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// RateTrip sets the trip rating if none exists and folds it into the driver's
// running average under a row lock
func (r *TripRepo) RateTrip(ctx context.Context, trip *models.Trip, rating int) (*models.Driver, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE trips SET customer_rating = $1, updated_at = now()
		WHERE id = $2 AND status = $3 AND customer_rating IS NULL`,
		rating, trip.ID, models.TripStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to rate trip: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	} else if n == 0 {
		return nil, fmt.Errorf("%w: trip %s is already rated", models.ErrIllegalState, trip.ID)
	}

	var driver models.Driver
	err = tx.GetContext(ctx, &driver, `
		SELECT user_id, verified, is_available, rating, total_ratings
		FROM drivers WHERE user_id = $1 FOR UPDATE`,
		trip.DriverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: driver of trip %s", models.ErrNotFound, trip.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock driver: %w", err)
	}

	driver.ApplyRating(rating)

	if _, err := tx.ExecContext(ctx,
		`UPDATE drivers SET rating = $1, total_ratings = $2, updated_at = now() WHERE user_id = $3`,
		driver.Rating, driver.TotalRatings, driver.UserID); err != nil {
		return nil, fmt.Errorf("failed to update driver rating: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &driver, nil
}

// GetTripByID retrieves a trip by ID
func (r *TripRepo) GetTripByID(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.GetContext(ctx, &trip, `SELECT `+tripColumns+tripFrom+` WHERE t.id = $1`, tripID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: trip %s", models.ErrNotFound, tripID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

// ListDueScheduledTrips returns SCHEDULED trips starting before the given time
func (r *TripRepo) ListDueScheduledTrips(ctx context.Context, before time.Time) ([]*models.Trip, error) {
	return r.listTrips(ctx,
		` WHERE t.status = $1 AND t.from_date_time < $2 ORDER BY t.from_date_time`,
		models.TripStatusScheduled, before)
}

// ListTripsByCustomer returns a customer's trips, newest first
func (r *TripRepo) ListTripsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*models.Trip, error) {
	return r.listTrips(ctx, ` WHERE t.customer_id = $1 ORDER BY t.created_at DESC`, customerID)
}

// ListTripsByDriver returns a driver's trips, newest first
func (r *TripRepo) ListTripsByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Trip, error) {
	return r.listTrips(ctx, ` WHERE t.driver_id = $1 ORDER BY t.created_at DESC`, driverID)
}

// ListTripsByDateRange returns trips starting within [start, end]
func (r *TripRepo) ListTripsByDateRange(ctx context.Context, start, end time.Time) ([]*models.Trip, error) {
	return r.listTrips(ctx,
		` WHERE t.from_date_time BETWEEN $1 AND $2 ORDER BY t.from_date_time`,
		start, end)
}

func (r *TripRepo) listTrips(ctx context.Context, where string, args ...interface{}) ([]*models.Trip, error) {
	trips := []*models.Trip{}
	if err := r.db.SelectContext(ctx, &trips, `SELECT `+tripColumns+tripFrom+where, args...); err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}
