package impl

import (
	"context"
	"testing"

	"bustracker/internal/domain/entity"
	domainerrors "bustracker/internal/domain/errors"
	"bustracker/internal/domain/repository"
	mockRepo "bustracker/internal/mocks/repository"
	"bustracker/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterToken(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{UserRepo: userRepo})
	ctx := context.Background()

	userRepo.EXPECT().
		AddFCMToken(ctx, "a@x.com", "tok-1").
		Return(&entity.User{Email: "a@x.com", FCMTokens: []string{"tok-1"}}, nil)

	user, err := svc.RegisterToken(ctx, &usecase.RegisterTokenInput{
		Email:    "a@x.com",
		FCMToken: "tok-1",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-1"}, user.FCMTokens)
}

func TestUserService_RegisterToken_RepoFails(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{UserRepo: userRepo})
	ctx := context.Background()

	userRepo.EXPECT().
		AddFCMToken(ctx, "a@x.com", "tok-1").
		Return(nil, errors.New("connection refused"))

	_, err := svc.RegisterToken(ctx, &usecase.RegisterTokenInput{
		Email:    "a@x.com",
		FCMToken: "tok-1",
	})
	assert.Error(t, err)
}

func TestUserService_GetTokens(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{UserRepo: userRepo})
	ctx := context.Background()

	userRepo.EXPECT().
		FindByEmail(ctx, "a@x.com").
		Return(&entity.User{Email: "a@x.com", FCMTokens: []string{"tok-1", "tok-2"}}, nil)

	tokens, err := svc.GetTokens(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-1", "tok-2"}, tokens)
}

func TestUserService_GetTokens_UnknownUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{UserRepo: userRepo})
	ctx := context.Background()

	userRepo.EXPECT().
		FindByEmail(ctx, "nobody@x.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.GetTokens(ctx, "nobody@x.com")
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "USER_NOT_FOUND", appErr.ErrorCode())
}
