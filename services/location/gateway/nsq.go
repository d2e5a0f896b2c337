package gateway

import (
	"context"

	"github.com/rizaldy/angkut/internal/pkg/models"
	"github.com/rizaldy/angkut/internal/pkg/nsq"
)

const topicDriverLocationUpdated = "driver.location.updated"

// LocationGW publishes location events to NSQ
type LocationGW struct {
	producer *nsq.Producer
}

// NewLocationGW creates a new location gateway
func NewLocationGW(producer *nsq.Producer) *LocationGW {
	return &LocationGW{producer: producer}
}

// PublishLocationUpdate emits a driver.location.updated event
func (g *LocationGW) PublishLocationUpdate(_ context.Context, update models.DriverLocationUpdate) error {
	return g.producer.Publish(topicDriverLocationUpdated, update)
}
