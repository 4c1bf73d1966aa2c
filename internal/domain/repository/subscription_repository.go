// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"bustracker/internal/domain/entity"
	"bustracker/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscriptionRepository defines the interface for subscription-related database operations.
type SubscriptionRepository interface {
	// UpsertSubscription creates or updates a subscription keyed on
	// (email, stop_id, trip_id). CreatedAt and LastNotifiedFor are preserved
	// on conflict; the entity is backfilled with the stored row.
	UpsertSubscription(ctx context.Context, subscription *entity.Subscription) error

	// ListActiveSubscriptions retrieves the active subscription set, capped at
	// limit rows to bound per-cycle cost.
	ListActiveSubscriptions(ctx context.Context, limit int) ([]*entity.Subscription, error)

	// FindSubscriptionsByEmail retrieves all subscriptions owned by a rider.
	FindSubscriptionsByEmail(ctx context.Context, email string) ([]*entity.Subscription, error)

	// MarkNotified records the idempotency marker for one scheduled arrival.
	// The update is a single-row conditional write keyed by the subscription
	// identity, which is the only mutation the poll core performs.
	MarkNotified(ctx context.Context, id uuid.UUID, arrivalKey string) error
}
