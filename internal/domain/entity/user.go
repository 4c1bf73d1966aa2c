// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a rider's notification identity. It carries the set of FCM device
// tokens currently registered for the rider; the poller looks the user up at
// dispatch time only and never caches tokens across poll cycles.
type User struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Email     string    `json:"email"`      // The rider's unique identity.
	FCMTokens []string  `json:"fcm_tokens"` // Registered push endpoint tokens. Duplicates are suppressed at write time.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this user account was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// UserDevice represents a single push endpoint registered for a rider.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the device registration.
	Email     string    `json:"email"`      // The owning rider's email.
	FCMToken  string    `json:"fcm_token"`  // Firebase Cloud Messaging token for push notifications.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this token was registered.
}
