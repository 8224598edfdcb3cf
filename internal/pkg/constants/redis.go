package constants

// Redis key formats
const (
	// Trips Service
	KeyTripSweepLock = "trips:sweep:lock" // Held by the instance running the scheduled-trip sweep

	// Rate Limiting
	KeyRateLimitLogin   = "rate:login"
	KeyRateLimitBooking = "rate:booking"
)
