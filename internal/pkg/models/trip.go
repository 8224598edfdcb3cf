package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusScheduled  TripStatus = "SCHEDULED"
	TripStatusConfirmed  TripStatus = "CONFIRMED"
	TripStatusInProgress TripStatus = "IN_PROGRESS"
	TripStatusCompleted  TripStatus = "COMPLETED"
	TripStatusCancelled  TripStatus = "CANCELLED"
)

var tripTransitions = map[TripStatus][]TripStatus{
	TripStatusScheduled:  {TripStatusCancelled},
	TripStatusConfirmed:  {TripStatusInProgress, TripStatusCancelled},
	TripStatusInProgress: {TripStatusCompleted, TripStatusCancelled},
	TripStatusCompleted:  nil,
	TripStatusCancelled:  nil,
}

// ActiveTripStatuses are the statuses during which a driver is held by a trip
var ActiveTripStatuses = []TripStatus{TripStatusConfirmed, TripStatusInProgress}

// ParseTripStatus converts user input into a known status
func ParseTripStatus(s string) (TripStatus, error) {
	status := TripStatus(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := tripTransitions[status]; !ok {
		return "", fmt.Errorf("%w: unknown trip status %q", ErrValidation, s)
	}
	return status, nil
}

// CanTransitionTo reports whether next is a legal successor of s
func (s TripStatus) CanTransitionTo(next TripStatus) bool {
	for _, allowed := range tripTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Value stores the status as plain text
func (s TripStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// IsTerminal reports whether no further transitions are possible
func (s TripStatus) IsTerminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// Trip represents a trip booking
type Trip struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	CustomerID       uuid.UUID  `json:"customer_id" db:"customer_id"`
	CustomerUsername string     `json:"customer_username,omitempty" db:"customer_username"`
	DriverID         *uuid.UUID `json:"driver_id,omitempty" db:"driver_id"`
	DriverUsername   *string    `json:"driver_username,omitempty" db:"driver_username"`
	CabID            *uuid.UUID `json:"cab_id,omitempty" db:"cab_id"`
	PerKmRate        *float64   `json:"per_km_rate,omitempty" db:"per_km_rate"`
	FromLocation     string     `json:"from_location" db:"from_location"`
	ToLocation       string     `json:"to_location" db:"to_location"`
	FromDateTime     *time.Time `json:"from_date_time,omitempty" db:"from_date_time"`
	ToDateTime       *time.Time `json:"to_date_time,omitempty" db:"to_date_time"`
	DistanceKm       float64    `json:"distance_km" db:"distance_km"`
	CarType          string     `json:"car_type" db:"car_type"`
	Status           TripStatus `json:"status" db:"status"`
	Bill             float64    `json:"bill" db:"bill"`
	CustomerRating   *int       `json:"customer_rating,omitempty" db:"customer_rating"`
	FromLatitude     float64    `json:"from_latitude" db:"from_latitude"`
	FromLongitude    float64    `json:"from_longitude" db:"from_longitude"`
	PickupGeohash    string     `json:"pickup_geohash,omitempty" db:"pickup_geohash"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// AssignTo attaches the driver and the driver's cab to the trip
func (t *Trip) AssignTo(driver *Driver) {
	driverID := driver.UserID
	username := driver.Username
	t.DriverID = &driverID
	t.DriverUsername = &username
	if driver.Cab != nil {
		cabID := driver.Cab.ID
		rate := driver.Cab.PerKmRate
		t.CabID = &cabID
		t.PerKmRate = &rate
	}
}

// HasAssignment reports whether a driver and cab hold this trip
func (t *Trip) HasAssignment() bool {
	return t.DriverID != nil && t.CabID != nil
}

// IsDrivenBy reports whether username is the assigned driver
func (t *Trip) IsDrivenBy(username string) bool {
	return t.DriverUsername != nil && *t.DriverUsername == username
}

// ComputeBill returns distance times the cab's per-km rate
func (t *Trip) ComputeBill() float64 {
	if t.PerKmRate == nil {
		return 0
	}
	return t.DistanceKm * *t.PerKmRate
}

// BookTripRequest is the customer's booking payload
type BookTripRequest struct {
	FromLocation  string     `json:"from_location"`
	ToLocation    string     `json:"to_location"`
	DistanceKm    float64    `json:"distance_km"`
	CarType       string     `json:"car_type"`
	FromLatitude  float64    `json:"from_latitude"`
	FromLongitude float64    `json:"from_longitude"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty"`
}

// Validate checks the request fields that do not need storage access
func (r BookTripRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.FromLocation) == "" || strings.TrimSpace(r.ToLocation) == "":
		return fmt.Errorf("%w: from_location and to_location are required", ErrValidation)
	case strings.TrimSpace(r.CarType) == "":
		return fmt.Errorf("%w: car_type is required", ErrValidation)
	case r.DistanceKm <= 0:
		return fmt.Errorf("%w: distance_km must be positive", ErrValidation)
	case r.FromLatitude < -90 || r.FromLatitude > 90 || r.FromLongitude < -180 || r.FromLongitude > 180:
		return fmt.Errorf("%w: pickup coordinates out of range", ErrValidation)
	}
	return nil
}

// UpdateTripStatusRequest carries the driver's requested status
type UpdateTripStatusRequest struct {
	Status string `json:"status"`
}

// RateTripRequest carries the customer's rating
type RateTripRequest struct {
	Rating int `json:"rating"`
}

// TripEvent is published on every trip state change
type TripEvent struct {
	TripID     string     `json:"trip_id"`
	CustomerID string     `json:"customer_id"`
	DriverID   string     `json:"driver_id,omitempty"`
	Status     TripStatus `json:"status"`
	Bill       float64    `json:"bill"`
	Rating     *int       `json:"rating,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// NewTripEvent snapshots the trip into an event payload
func NewTripEvent(t *Trip) TripEvent {
	event := TripEvent{
		TripID:     t.ID.String(),
		CustomerID: t.CustomerID.String(),
		Status:     t.Status,
		Bill:       t.Bill,
		Rating:     t.CustomerRating,
		OccurredAt: Now(),
	}
	if t.DriverID != nil {
		event.DriverID = t.DriverID.String()
	}
	return event
}

// SweepResult summarizes one run of the scheduled-trip promoter
type SweepResult struct {
	Due       int `json:"due"`
	Promoted  int `json:"promoted"`
	Unmatched int `json:"unmatched"`
	Failed    int `json:"failed"`
}
