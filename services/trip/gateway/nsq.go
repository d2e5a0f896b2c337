package gateway

import (
	"context"
	"time"

	"github.com/rizaldy/angkut/internal/pkg/models"
	"github.com/rizaldy/angkut/internal/pkg/nsq"
)

const (
	topicTripUpdated = "trip.updated"
	topicTripRemoved = "trip.removed"
	topicRiderNotify = "rider.notify"
)

// TripGW publishes trip events to NSQ
type TripGW struct {
	producer *nsq.Producer
}

// NewTripGW creates a new trip gateway
func NewTripGW(producer *nsq.Producer) *TripGW {
	return &TripGW{producer: producer}
}

// PublishTripUpdated broadcasts the full trip snapshot
func (g *TripGW) PublishTripUpdated(_ context.Context, trip *models.Trip) error {
	return g.producer.Publish(topicTripUpdated, models.TripEvent{
		Trip:      trip,
		CreatedAt: time.Now(),
	})
}

// PublishTripRemoved announces the trip is no longer open for acceptance
func (g *TripGW) PublishTripRemoved(_ context.Context, trip *models.Trip) error {
	return g.producer.Publish(topicTripRemoved, models.TripEvent{
		Trip:      trip,
		CreatedAt: time.Now(),
	})
}

// NotifyRider pushes a rider-facing notification
func (g *TripGW) NotifyRider(_ context.Context, notification models.RiderNotification) error {
	return g.producer.Publish(topicRiderNotify, notification)
}
