package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bustracker/config"
	"bustracker/internal/domain/constants"
	domainerrors "bustracker/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestErrorMiddleware(t *testing.T, env string) *ErrorMiddleware {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = env

	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
}

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/subscriptions", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHandleHTTPError_AppError(t *testing.T) {
	m := newTestErrorMiddleware(t, constants.EnvProduction)
	c, rec := newErrorContext(t)

	m.HandleHTTPError(domainerrors.ErrValidationFailed.WithDetails("stop_id is required"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "stop_id is required")
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	m := newTestErrorMiddleware(t, constants.EnvProduction)
	c, rec := newErrorContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "route not found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "route not found")
}

func TestHandleHTTPError_UnknownErrorRedactsDetailsOutsideDevelop(t *testing.T) {
	m := newTestErrorMiddleware(t, constants.EnvProduction)
	c, rec := newErrorContext(t)

	m.HandleHTTPError(errors.New("dial tcp 10.0.0.5:5432: connection refused"), c)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}

func TestHandleHTTPError_UnknownErrorKeepsDetailsInDevelop(t *testing.T) {
	m := newTestErrorMiddleware(t, constants.EnvDevelop)
	c, rec := newErrorContext(t)

	m.HandleHTTPError(errors.New("dial tcp 10.0.0.5:5432: connection refused"), c)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestHandleHTTPError_SkipsCommittedResponse(t *testing.T) {
	m := newTestErrorMiddleware(t, constants.EnvDevelop)
	c, rec := newErrorContext(t)

	require.NoError(t, c.NoContent(http.StatusOK))
	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
