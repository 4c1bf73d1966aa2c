package impl

import (
	"context"
	"strconv"
	"time"

	"bustracker/internal/domain/entity"
	domainerrors "bustracker/internal/domain/errors"
	"bustracker/internal/domain/service"
	"bustracker/internal/errors"
	"bustracker/internal/infra/mtd"
	"bustracker/internal/usecase"

	"go.uber.org/fx"
)

type scheduleService struct {
	schedule service.ScheduleService
}

// ScheduleServiceParams holds dependencies for ScheduleService, injected by Fx.
type ScheduleServiceParams struct {
	fx.In

	Schedule service.ScheduleService `optional:"true"`
}

// NewScheduleService creates a new schedule query service instance
func NewScheduleService(params ScheduleServiceParams) usecase.ScheduleUsecase {
	return &scheduleService{
		schedule: params.Schedule,
	}
}

// GetStopTimes retrieves today's scheduled stop times for a stop
func (s *scheduleService) GetStopTimes(ctx context.Context, stopID string) ([]entity.StopTime, error) {
	if s.schedule == nil {
		return nil, domainerrors.ErrScheduleUnavailable.WithDetails("schedule feed is not configured")
	}

	times, err := s.schedule.StopTimesByStop(ctx, stopID, time.Now())
	if err != nil {
		return nil, mapFeedError(err)
	}

	return times, nil
}

// GetDepartures retrieves real-time departures for a stop within the preview window
func (s *scheduleService) GetDepartures(ctx context.Context, stopID string, previewMinutes int) (map[string]any, error) {
	if s.schedule == nil {
		return nil, domainerrors.ErrScheduleUnavailable.WithDetails("schedule feed is not configured")
	}

	departures, err := s.schedule.DeparturesByStop(ctx, stopID, previewMinutes)
	if err != nil {
		return nil, mapFeedError(err)
	}

	return departures, nil
}

// GetShape retrieves the polyline payload for a route shape
func (s *scheduleService) GetShape(ctx context.Context, shapeID string) (map[string]any, error) {
	if s.schedule == nil {
		return nil, domainerrors.ErrScheduleUnavailable.WithDetails("schedule feed is not configured")
	}

	shape, err := s.schedule.ShapeByID(ctx, shapeID)
	if err != nil {
		return nil, mapFeedError(err)
	}

	return shape, nil
}

// GetStopInfo retrieves stop metadata including coordinates
func (s *scheduleService) GetStopInfo(ctx context.Context, stopID string) (*entity.Stop, error) {
	if s.schedule == nil {
		return nil, domainerrors.ErrScheduleUnavailable.WithDetails("schedule feed is not configured")
	}

	stop, err := s.schedule.StopInfo(ctx, stopID)
	if err != nil {
		var upstreamErr *mtd.UpstreamError
		var networkErr *mtd.NetworkError
		switch {
		case errors.As(err, &upstreamErr):
			return nil, domainerrors.ErrScheduleUpstream.WithDetails("upstream status " + strconv.Itoa(upstreamErr.StatusCode))
		case errors.As(err, &networkErr):
			return nil, domainerrors.ErrScheduleUnavailable.WithDetails(networkErr.Error())
		default:
			return nil, domainerrors.ErrStopNotFound.WithDetails(err.Error())
		}
	}

	return stop, nil
}

// mapFeedError converts typed feed failures into the HTTP error taxonomy.
func mapFeedError(err error) error {
	var upstreamErr *mtd.UpstreamError
	if errors.As(err, &upstreamErr) {
		return domainerrors.ErrScheduleUpstream.WithDetails("upstream status " + strconv.Itoa(upstreamErr.StatusCode))
	}

	var networkErr *mtd.NetworkError
	if errors.As(err, &networkErr) {
		return domainerrors.ErrScheduleUnavailable.WithDetails(networkErr.Error())
	}

	return domainerrors.ErrInternalError.WithDetails(err.Error())
}
