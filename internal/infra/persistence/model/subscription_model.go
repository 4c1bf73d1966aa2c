package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel is the GORM-specific struct for the 'subscriptions' table.
// The (email, stop_id, trip_id) triple is the upsert identity.
type SubscriptionModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email               string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_subscriptions_identity,priority:1;index"`
	StopID              string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_subscriptions_identity,priority:2"`
	TripID              string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_subscriptions_identity,priority:3"`
	NotifyBeforeMinutes *int      `gorm:"type:int"`
	LastNotifiedFor     *string   `gorm:"type:varchar(64)"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
