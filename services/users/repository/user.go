package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

const userColumns = `id, username, email, password_hash, full_name, role, created_at, updated_at`

// CreateUser inserts the user and, for drivers, the driver row in one transaction
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (:id, :username, :email, :password_hash, :full_name, :role, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if user.Role == models.RoleDriver && user.DriverInfo != nil {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO drivers (user_id, verified, is_available, total_ratings)
			VALUES ($1, $2, $3, 0)
		`, user.ID, user.DriverInfo.Verified, user.DriverInfo.IsAvailable)
		if err != nil {
			return fmt.Errorf("failed to insert driver info: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ExistsByUsernameOrEmail reports whether either identifier is already taken
func (r *UserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE lower(username) = lower($1) OR lower(email) = lower($2))`
	if err := r.db.GetContext(ctx, &exists, query, username, email); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

// GetUserByUsername returns the account used for login
func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: user %s", models.ErrNotFound, username)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

// GetUserByID returns the account with the given id. Drivers come with their
// driver state and cab.
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: user %s", models.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	if user.Role == models.RoleDriver {
		driver, err := r.getDriver(ctx, id)
		if err != nil {
			return nil, err
		}
		user.DriverInfo = driver
	}
	return &user, nil
}
