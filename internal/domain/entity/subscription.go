// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscription represents one rider's interest in one trip at one stop.
// The (Email, StopID, TripID) triple is the upsert identity of the record.
type Subscription struct {
	ID                  uuid.UUID `json:"id"`                              // The Global Unique Identifier (GUID) for the subscription.
	Email               string    `json:"email"`                           // The owning rider's email. References User.Email, not an ownership link.
	StopID              string    `json:"stop_id"`                         // The transit stop being watched.
	TripID              string    `json:"trip_id"`                         // The trip to watch for at that stop.
	NotifyBeforeMinutes *int      `json:"notify_before_minutes,omitempty"` // Minutes before arrival to alert. Nil means the poller default window.
	LastNotifiedFor     *string   `json:"last_notified_for,omitempty"`     // Arrival key of the scheduled arrival already notified. Idempotency marker.
	CreatedAt           time.Time `json:"created_at"`                      // Timestamp of when the subscription was created. Immutable.
	UpdatedAt           time.Time `json:"updated_at"`                      // Timestamp of the last modification.
}

// Window returns the notification window in minutes, falling back to
// defaultMinutes when the subscription carries no valid override.
func (s *Subscription) Window(defaultMinutes int) int {
	if s.NotifyBeforeMinutes != nil && *s.NotifyBeforeMinutes >= 0 {
		return *s.NotifyBeforeMinutes
	}

	return defaultMinutes
}

// AlreadyNotified reports whether the idempotency marker already records the
// given arrival key.
func (s *Subscription) AlreadyNotified(arrivalKey string) bool {
	return s.LastNotifiedFor != nil && *s.LastNotifiedFor == arrivalKey
}
