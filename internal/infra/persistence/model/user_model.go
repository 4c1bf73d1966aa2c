package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Devices []UserDeviceModel `gorm:"foreignKey:Email;references:Email"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserDeviceModel is the GORM-specific struct for the 'user_devices' table.
// The unique (email, fcm_token) index suppresses duplicate registrations.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_token,priority:1;index"`
	FCMToken  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_token,priority:2"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
