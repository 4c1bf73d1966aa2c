package usecase

import (
	"context"

	"bustracker/internal/domain/entity"
)

// RegisterTokenInput carries the caller-supplied fields for registering a
// device token
type RegisterTokenInput struct {
	Email    string `json:"email" validate:"required,email"`
	FCMToken string `json:"fcm_token" validate:"required"`
}

// UserUsecase defines the interface for user and device token use cases
type UserUsecase interface {
	// RegisterToken associates an FCM device token with a user, creating the
	// user if needed. Registering the same token twice is a no-op
	RegisterToken(ctx context.Context, input *RegisterTokenInput) (*entity.User, error)

	// GetTokens retrieves the registered device tokens for an email
	GetTokens(ctx context.Context, email string) ([]string, error)
}
