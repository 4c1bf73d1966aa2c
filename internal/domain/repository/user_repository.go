// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bustracker/internal/domain/entity"
	"bustracker/internal/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by email, with their current FCM
	// token set attached.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// EnsureUser creates the user row for an email if it does not exist yet.
	EnsureUser(ctx context.Context, email string) error

	// AddFCMToken registers a push token for a rider, suppressing duplicates.
	// The user row is created when missing.
	AddFCMToken(ctx context.Context, email, token string) (*entity.User, error)
}
