package constants

// NATS Subjects
const (
	// Trip lifecycle events
	SubjectTripBooked        = "trip.booked"
	SubjectTripConfirmed     = "trip.confirmed"
	SubjectTripStatusUpdated = "trip.status.updated"
	SubjectTripCompleted     = "trip.completed"
	SubjectTripCancelled     = "trip.cancelled"
	SubjectTripRated         = "trip.rated"

	// Driver events
	SubjectDriverVerified = "driver.verified"
)
