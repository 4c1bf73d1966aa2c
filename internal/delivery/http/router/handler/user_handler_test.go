package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"bustracker/internal/domain/entity"
	domainerrors "bustracker/internal/domain/errors"
	mockUC "bustracker/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUserHandler(t *testing.T) (*UserHandler, *mockUC.MockUserUsecase) {
	t.Helper()

	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{
		UserUC: userUC,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, userUC
}

func TestUserHandler_RegisterToken(t *testing.T) {
	h, userUC := newTestUserHandler(t)

	body := `{"email":"a@x.com","fcm_token":"tok-1"}`
	c, rec := newEchoContext(t, http.MethodPost, "/api/users/register-token", body)

	userUC.EXPECT().
		RegisterToken(mock.Anything, mock.AnythingOfType("*usecase.RegisterTokenInput")).
		Return(&entity.User{Email: "a@x.com", FCMTokens: []string{"tok-1"}}, nil)

	require.NoError(t, h.RegisterToken(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "tok-1")
}

func TestUserHandler_RegisterToken_MissingToken(t *testing.T) {
	h, _ := newTestUserHandler(t)

	c, rec := newEchoContext(t, http.MethodPost, "/api/users/register-token", `{"email":"a@x.com"}`)

	require.NoError(t, h.RegisterToken(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_GetTokens(t *testing.T) {
	h, userUC := newTestUserHandler(t)

	c, rec := newEchoContext(t, http.MethodGet, "/api/users/a@x.com/tokens", "")
	c.SetParamNames("email")
	c.SetParamValues("a@x.com")

	userUC.EXPECT().
		GetTokens(mock.Anything, "a@x.com").
		Return([]string{"tok-1", "tok-2"}, nil)

	require.NoError(t, h.GetTokens(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tok-2")
}

func TestUserHandler_GetTokens_UnknownUser(t *testing.T) {
	h, userUC := newTestUserHandler(t)

	c, rec := newEchoContext(t, http.MethodGet, "/api/users/nobody@x.com/tokens", "")
	c.SetParamNames("email")
	c.SetParamValues("nobody@x.com")

	userUC.EXPECT().
		GetTokens(mock.Anything, "nobody@x.com").
		Return(nil, domainerrors.ErrUserNotFound)

	require.NoError(t, h.GetTokens(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}
