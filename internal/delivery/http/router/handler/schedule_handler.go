package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bustracker/internal/delivery/http/response"
	"bustracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScheduleHandlerParams holds dependencies for ScheduleHandler, injected by Fx.
type ScheduleHandlerParams struct {
	fx.In

	ScheduleUC usecase.ScheduleUsecase
	Logger     *slog.Logger
}

// ScheduleHandler proxies schedule feed queries for clients that cannot hold
// the feed credential themselves
type ScheduleHandler struct {
	scheduleUC usecase.ScheduleUsecase
	logger     *slog.Logger
}

// NewScheduleHandler is the constructor for ScheduleHandler
func NewScheduleHandler(params ScheduleHandlerParams) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUC: params.ScheduleUC,
		logger:     params.Logger,
	}
}

// GetStopTimes handles fetching today's scheduled stop times for a stop
func (h *ScheduleHandler) GetStopTimes(c echo.Context) error {
	stopID := c.QueryParam("stop_id")
	if stopID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "stop_id is required")
	}

	times, err := h.scheduleUC.GetStopTimes(c.Request().Context(), stopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, times, "Stop times retrieved successfully")
}

// GetDepartures handles fetching real-time departures for a stop
func (h *ScheduleHandler) GetDepartures(c echo.Context) error {
	stopID := c.QueryParam("stop_id")
	if stopID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "stop_id is required")
	}

	previewMinutes := 60
	if pt := c.QueryParam("pt"); pt != "" {
		parsed, err := strconv.Atoi(pt)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "INVALID_INPUT", "pt must be a positive integer")
		}
		previewMinutes = parsed
	}

	departures, err := h.scheduleUC.GetDepartures(c.Request().Context(), stopID, previewMinutes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, departures, "Departures retrieved successfully")
}

// GetShape handles fetching the polyline payload for a route shape
func (h *ScheduleHandler) GetShape(c echo.Context) error {
	shapeID := c.QueryParam("shape_id")
	if shapeID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "shape_id is required")
	}

	shape, err := h.scheduleUC.GetShape(c.Request().Context(), shapeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shape, "Shape retrieved successfully")
}

// GetStopInfo handles resolving a stop's name and coordinates
func (h *ScheduleHandler) GetStopInfo(c echo.Context) error {
	stopID := c.QueryParam("stop_id")
	if stopID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "stop_id is required")
	}

	stop, err := h.scheduleUC.GetStopInfo(c.Request().Context(), stopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stop, "Stop info retrieved successfully")
}
