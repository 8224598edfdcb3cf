package models

import "errors"

// Error classes shared by all services. Wrap them with fmt.Errorf("...: %w")
// and let handlers translate them with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrIllegalState      = errors.New("illegal state")
	ErrNoDriverAvailable = errors.New("no driver available")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrValidation        = errors.New("validation failed")
	ErrConflict          = errors.New("conflict")
	ErrUnauthorized      = errors.New("unauthorized")

	// ErrDriverReserved is returned by storage when a reservation loses the
	// compare-and-set on the driver or cab availability flag.
	ErrDriverReserved = errors.New("driver already reserved")
)
