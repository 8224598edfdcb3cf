package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Driver holds the driver-specific state of a user
type Driver struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	Verified     bool      `json:"verified" db:"verified"`
	IsAvailable  bool      `json:"is_available" db:"is_available"`
	Rating       *float64  `json:"rating,omitempty" db:"rating"`
	TotalRatings int       `json:"total_ratings" db:"total_ratings"`
	Latitude     *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude    *float64  `json:"longitude,omitempty" db:"longitude"`
	Geohash      string    `json:"geohash,omitempty" db:"geohash"`
	Cab          *Cab      `json:"cab,omitempty" db:"-"`
}

// Cab is the vehicle a driver operates
type Cab struct {
	ID          uuid.UUID `json:"id" db:"id"`
	DriverID    uuid.UUID `json:"driver_id" db:"driver_id"`
	CarType     string    `json:"car_type" db:"car_type"`
	PlateNumber string    `json:"plate_number" db:"plate_number"`
	PerKmRate   float64   `json:"per_km_rate" db:"per_km_rate"`
	IsAvailable bool      `json:"is_available" db:"is_available"`
}

// RatingValue returns the current average, treating an unrated driver as 0
func (d *Driver) RatingValue() float64 {
	if d.Rating == nil {
		return 0
	}
	return *d.Rating
}

// HasLocation reports whether both coordinates are known
func (d *Driver) HasLocation() bool {
	return d.Latitude != nil && d.Longitude != nil
}

// IsEligibleFor reports whether the driver can take a new trip of carType
func (d *Driver) IsEligibleFor(carType string) bool {
	return d.Verified &&
		d.IsAvailable &&
		d.Cab != nil &&
		strings.EqualFold(d.Cab.CarType, carType) &&
		d.HasLocation()
}

// ApplyRating folds one more customer rating into the running average
func (d *Driver) ApplyRating(rating int) {
	avg := (d.RatingValue()*float64(d.TotalRatings) + float64(rating)) / float64(d.TotalRatings+1)
	d.Rating = &avg
	d.TotalRatings++
}

// DriverLocationRequest updates the driver's last known position
type DriverLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CabRequest registers or updates the driver's cab
type CabRequest struct {
	CarType     string  `json:"car_type"`
	PlateNumber string  `json:"plate_number"`
	PerKmRate   float64 `json:"per_km_rate"`
}

// VerificationRequest toggles a driver's verified flag
type VerificationRequest struct {
	Verified bool `json:"verified"`
}

// Validate checks the coordinates are on the globe
func (r DriverLocationRequest) Validate() error {
	if r.Latitude < -90 || r.Latitude > 90 || r.Longitude < -180 || r.Longitude > 180 {
		return fmt.Errorf("%w: coordinates out of range", ErrValidation)
	}
	return nil
}

// Validate checks the cab fields
func (r CabRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.CarType) == "":
		return fmt.Errorf("%w: car_type is required", ErrValidation)
	case strings.TrimSpace(r.PlateNumber) == "":
		return fmt.Errorf("%w: plate_number is required", ErrValidation)
	case r.PerKmRate <= 0:
		return fmt.Errorf("%w: per_km_rate must be positive", ErrValidation)
	}
	return nil
}

// DriverEvent is published when an admin changes a driver's verification
type DriverEvent struct {
	DriverID   string    `json:"driver_id"`
	Username   string    `json:"username"`
	Verified   bool      `json:"verified"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewDriverEvent snapshots the driver into an event payload
func NewDriverEvent(d *Driver) DriverEvent {
	return DriverEvent{
		DriverID:   d.UserID.String(),
		Username:   d.Username,
		Verified:   d.Verified,
		OccurredAt: Now(),
	}
}
