package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bustracker/internal/delivery/http/validator"
	"bustracker/internal/domain/entity"
	mockUC "bustracker/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEchoContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestSubscriptionHandler(t *testing.T) (*SubscriptionHandler, *mockUC.MockSubscriptionUsecase) {
	t.Helper()

	subUC := mockUC.NewMockSubscriptionUsecase(t)
	h := NewSubscriptionHandler(SubscriptionHandlerParams{
		SubscriptionUC: subUC,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, subUC
}

func TestSubscriptionHandler_CreateSubscription(t *testing.T) {
	h, subUC := newTestSubscriptionHandler(t)

	body := `{"email":"a@x.com","stop_id":"IU:1","trip_id":"T1","notify_before_minutes":10}`
	c, rec := newEchoContext(t, http.MethodPost, "/api/subscriptions", body)

	subUC.EXPECT().
		CreateSubscription(mock.Anything, mock.AnythingOfType("*usecase.SubscriptionInput")).
		Return(&entity.Subscription{Email: "a@x.com", StopID: "IU:1", TripID: "T1"}, nil)

	require.NoError(t, h.CreateSubscription(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "IU:1")
}

func TestSubscriptionHandler_CreateSubscription_MissingFields(t *testing.T) {
	h, _ := newTestSubscriptionHandler(t)

	c, rec := newEchoContext(t, http.MethodPost, "/api/subscriptions", `{"email":"a@x.com"}`)

	require.NoError(t, h.CreateSubscription(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestSubscriptionHandler_CreateSubscription_InvalidEmail(t *testing.T) {
	h, _ := newTestSubscriptionHandler(t)

	body := `{"email":"not-an-email","stop_id":"IU:1","trip_id":"T1"}`
	c, rec := newEchoContext(t, http.MethodPost, "/api/subscriptions", body)

	require.NoError(t, h.CreateSubscription(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubscriptionHandler_GetSubscriptionsByEmail(t *testing.T) {
	h, subUC := newTestSubscriptionHandler(t)

	c, rec := newEchoContext(t, http.MethodGet, "/api/subscriptions/by-email/a@x.com", "")
	c.SetParamNames("email")
	c.SetParamValues("a@x.com")

	subUC.EXPECT().
		GetSubscriptionsByEmail(mock.Anything, "a@x.com").
		Return([]*entity.Subscription{{Email: "a@x.com", StopID: "IU:1", TripID: "T1"}}, nil)

	require.NoError(t, h.GetSubscriptionsByEmail(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "T1")
}

func TestSubscriptionHandler_ListSubscriptions(t *testing.T) {
	h, subUC := newTestSubscriptionHandler(t)

	c, rec := newEchoContext(t, http.MethodGet, "/api/subscriptions", "")

	subUC.EXPECT().
		ListSubscriptions(mock.Anything).
		Return(nil, nil)

	require.NoError(t, h.ListSubscriptions(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
