package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"bustracker/internal/domain/entity"
	domainerrors "bustracker/internal/domain/errors"
	mockUC "bustracker/internal/mocks/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestScheduleHandler(t *testing.T) (*ScheduleHandler, *mockUC.MockScheduleUsecase) {
	t.Helper()

	scheduleUC := mockUC.NewMockScheduleUsecase(t)
	h := NewScheduleHandler(ScheduleHandlerParams{
		ScheduleUC: scheduleUC,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, scheduleUC
}

func TestScheduleHandler_GetStopTimes(t *testing.T) {
	h, scheduleUC := newTestScheduleHandler(t)

	c, rec := newEchoContext(t, http.MethodGet, "/api/mtd/stop-times?stop_id=IU:1", "")

	scheduleUC.EXPECT().
		GetStopTimes(mock.Anything, "IU:1").
		Return([]entity.StopTime{{TripID: "T1", ArrivalTime: "14:02:00"}}, nil)

	require.NoError(t, h.GetStopTimes(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "14:02:00")
}

func TestScheduleHandler_GetStopTimes_MissingStopID(t *testing.T) {
	h, _ := newTestScheduleHandler(t)

	c, rec := newEchoContext(t, http.MethodGet, "/api/mtd/stop-times", "")

	require.NoError(t, h.GetStopTimes(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScheduleHandler_GetStopTimes_UpstreamFailure(t *testing.T) {
	h, scheduleUC := newTestScheduleHandler(t)

	c, rec := newEchoContext(t, http.MethodGet, "/api/mtd/stop-times?stop_id=IU:1", "")

	scheduleUC.EXPECT().
		GetStopTimes(mock.Anything, "IU:1").
		Return(nil, domainerrors.ErrScheduleUpstream.WithDetails("upstream status 500"))

	require.NoError(t, h.GetStopTimes(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "SCHEDULE_UPSTREAM_FAILED")
}

func TestScheduleHandler_GetDepartures(t *testing.T) {
	h, scheduleUC := newTestScheduleHandler(t)

	c, rec := newEchoContext(t, http.MethodGet, "/api/mtd/departures?stop_id=IU:1&pt=30", "")

	scheduleUC.EXPECT().
		GetDepartures(mock.Anything, "IU:1", 30).
		Return(map[string]any{"departures": []any{}}, nil)

	require.NoError(t, h.GetDepartures(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestScheduleHandler_GetDepartures_BadPreview(t *testing.T) {
	h, _ := newTestScheduleHandler(t)

	c, rec := newEchoContext(t, http.MethodGet, "/api/mtd/departures?stop_id=IU:1&pt=abc", "")

	require.NoError(t, h.GetDepartures(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScheduleHandler_GetShape(t *testing.T) {
	h, scheduleUC := newTestScheduleHandler(t)

	c, rec := newEchoContext(t, http.MethodGet, "/api/mtd/shape?shape_id=GRN-EVENING", "")

	scheduleUC.EXPECT().
		GetShape(mock.Anything, "GRN-EVENING").
		Return(map[string]any{"shapes": []any{map[string]any{"shape_pt_sequence": float64(1)}}}, nil)

	require.NoError(t, h.GetShape(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "shape_pt_sequence")
}

func TestScheduleHandler_GetShape_MissingShapeID(t *testing.T) {
	h, _ := newTestScheduleHandler(t)

	c, rec := newEchoContext(t, http.MethodGet, "/api/mtd/shape", "")

	require.NoError(t, h.GetShape(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScheduleHandler_GetShape_UpstreamFailure(t *testing.T) {
	h, scheduleUC := newTestScheduleHandler(t)

	c, rec := newEchoContext(t, http.MethodGet, "/api/mtd/shape?shape_id=GRN-EVENING", "")

	scheduleUC.EXPECT().
		GetShape(mock.Anything, "GRN-EVENING").
		Return(nil, domainerrors.ErrScheduleUpstream.WithDetails("upstream status 502"))

	require.NoError(t, h.GetShape(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "SCHEDULE_UPSTREAM_FAILED")
}

func TestScheduleHandler_GetStopInfo(t *testing.T) {
	h, scheduleUC := newTestScheduleHandler(t)

	c, rec := newEchoContext(t, http.MethodGet, "/api/mtd/stop-info?stop_id=IU:1", "")

	scheduleUC.EXPECT().
		GetStopInfo(mock.Anything, "IU:1").
		Return(&entity.Stop{ID: "IU:1", Name: "Illini Union", Location: orb.Point{-88.2272, 40.1099}, Source: "fallback"}, nil)

	require.NoError(t, h.GetStopInfo(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Illini Union")
}

func TestScheduleHandler_GetStopInfo_UnknownStop(t *testing.T) {
	h, scheduleUC := newTestScheduleHandler(t)

	c, rec := newEchoContext(t, http.MethodGet, "/api/mtd/stop-info?stop_id=NOPE", "")

	scheduleUC.EXPECT().
		GetStopInfo(mock.Anything, "NOPE").
		Return(nil, domainerrors.ErrStopNotFound)

	require.NoError(t, h.GetStopInfo(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "STOP_NOT_FOUND")
}
