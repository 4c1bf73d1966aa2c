package usecase

import (
	"context"

	"bustracker/internal/domain/entity"
)

// SubscriptionInput carries the caller-supplied fields for creating or
// updating a subscription
type SubscriptionInput struct {
	Email               string `json:"email" validate:"required,email"`
	StopID              string `json:"stop_id" validate:"required"`
	TripID              string `json:"trip_id" validate:"required"`
	NotifyBeforeMinutes *int   `json:"notify_before_minutes,omitempty" validate:"omitempty,gte=0"`
}

// SubscriptionUsecase defines the interface for subscription management use cases
type SubscriptionUsecase interface {
	// CreateSubscription creates a subscription or updates the notify window
	// of an existing one for the same email, stop and trip
	CreateSubscription(ctx context.Context, input *SubscriptionInput) (*entity.Subscription, error)

	// ListSubscriptions retrieves all subscriptions, oldest first
	ListSubscriptions(ctx context.Context) ([]*entity.Subscription, error)

	// GetSubscriptionsByEmail retrieves all subscriptions for an email
	GetSubscriptionsByEmail(ctx context.Context, email string) ([]*entity.Subscription, error)
}
