package service

import (
	"context"
)

// ArrivalNotificationEvent records one confirmed arrival notification for
// downstream consumers (analytics, audit). Published after the idempotency
// marker is committed; publish failures never affect the poll cycle.
type ArrivalNotificationEvent struct {
	SubscriptionID string  `json:"subscription_id"`
	Email          string  `json:"email"`
	StopID         string  `json:"stop_id"`
	TripID         string  `json:"trip_id"`
	ArrivalKey     string  `json:"arrival_key"`
	ArrivalTime    string  `json:"arrival_time"` // Literal schedule string from the feed.
	MinutesAway    float64 `json:"minutes_away"`
	TokenCount     int     `json:"token_count"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishArrivalNotification publishes a confirmed-dispatch event for async processing
	PublishArrivalNotification(ctx context.Context, event *ArrivalNotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
