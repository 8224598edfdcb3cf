package models

import (
	"database/sql/driver"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the account type of a user
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCustomer, RoleDriver:
		return true
	}
	return false
}

// Value stores the role as plain text
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// User represents an account of any role
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"full_name" db:"full_name"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
	DriverInfo   *Driver   `json:"driver_info,omitempty" db:"-"`
}

// Customer is the subset of a user the booking flow needs
type Customer struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Username string    `json:"username" db:"username"`
	Email    string    `json:"email" db:"email"`
}

// RegisterRequest is the payload for account creation
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

// MinPasswordLength is the shortest password accepted at registration
const MinPasswordLength = 8

// Validate checks the registration fields. Role is checked by the caller.
func (r RegisterRequest) Validate() error {
	username := strings.TrimSpace(r.Username)
	switch {
	case len(username) < 3 || len(username) > 50:
		return fmt.Errorf("%w: username must be 3 to 50 characters", ErrValidation)
	case strings.ContainsAny(username, " \t\n"):
		return fmt.Errorf("%w: username must not contain spaces", ErrValidation)
	case len(r.Password) < MinPasswordLength:
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	return nil
}

// LoginRequest is the payload for password login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned after a successful login
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt int64     `json:"expires_at"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
}

// Principal is the authenticated caller extracted from a JWT
type Principal struct {
	UserID   uuid.UUID
	Username string
	Role     Role
}
