package impl

import (
	"context"

	"bustracker/internal/domain/entity"
	domainerrors "bustracker/internal/domain/errors"
	"bustracker/internal/domain/repository"
	"bustracker/internal/errors"
	"bustracker/internal/usecase"

	"go.uber.org/fx"
)

type userService struct {
	userRepo repository.UserRepository
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
	}
}

// RegisterToken associates an FCM device token with a user, creating the user
// row when missing. Re-registering a token is a no-op.
func (s *userService) RegisterToken(ctx context.Context, input *usecase.RegisterTokenInput) (*entity.User, error) {
	user, err := s.userRepo.AddFCMToken(ctx, input.Email, input.FCMToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to register device token")
	}

	return user, nil
}

// GetTokens retrieves the registered device tokens for an email
func (s *userService) GetTokens(ctx context.Context, email string) ([]string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user.FCMTokens, nil
}
