package gateway

import (
	"context"

	"github.com/piresc/cabbooking/internal/pkg/constants"
	"github.com/piresc/cabbooking/internal/pkg/models"
	nrpkg "github.com/piresc/cabbooking/internal/pkg/newrelic"
)

// Publisher is the subset of the NATS client the gateway needs
type Publisher interface {
	PublishJSON(subject string, message interface{}) error
}

// TripGW publishes trip lifecycle events to NATS
type TripGW struct {
	publisher Publisher
}

// NewTripGW creates a new trip gateway
func NewTripGW(publisher Publisher) *TripGW {
	return &TripGW{
		publisher: publisher,
	}
}

// PublishTripBooked announces a newly created trip
func (g *TripGW) PublishTripBooked(ctx context.Context, trip *models.Trip) error {
	return g.publish(ctx, constants.SubjectTripBooked, trip)
}

// PublishTripStatusChanged announces a status transition on the subject for
// the new status
func (g *TripGW) PublishTripStatusChanged(ctx context.Context, trip *models.Trip) error {
	return g.publish(ctx, statusSubject(trip.Status), trip)
}

// PublishTripRated announces a customer rating
func (g *TripGW) PublishTripRated(ctx context.Context, trip *models.Trip) error {
	return g.publish(ctx, constants.SubjectTripRated, trip)
}

func (g *TripGW) publish(ctx context.Context, subject string, trip *models.Trip) error {
	return nrpkg.WithSegment(ctx, "NATS.Publish."+subject, func() error {
		return g.publisher.PublishJSON(subject, models.NewTripEvent(trip))
	})
}

func statusSubject(status models.TripStatus) string {
	switch status {
	case models.TripStatusConfirmed:
		return constants.SubjectTripConfirmed
	case models.TripStatusCompleted:
		return constants.SubjectTripCompleted
	case models.TripStatusCancelled:
		return constants.SubjectTripCancelled
	default:
		return constants.SubjectTripStatusUpdated
	}
}
