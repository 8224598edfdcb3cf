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

// UserGW publishes driver account events to NATS
type UserGW struct {
	publisher Publisher
}

// NewUserGW creates a new user gateway
func NewUserGW(publisher Publisher) *UserGW {
	return &UserGW{
		publisher: publisher,
	}
}

// PublishDriverVerified announces a change of the driver's verification flag
func (g *UserGW) PublishDriverVerified(ctx context.Context, driver *models.Driver) error {
	return nrpkg.WithSegment(ctx, "NATS.Publish."+constants.SubjectDriverVerified, func() error {
		return g.publisher.PublishJSON(constants.SubjectDriverVerified, models.NewDriverEvent(driver))
	})
}
