package usecase

import (
	"context"

	"bustracker/internal/domain/entity"
)

// ScheduleUsecase defines the interface for read-through schedule queries
type ScheduleUsecase interface {
	// GetStopTimes retrieves today's scheduled stop times for a stop
	GetStopTimes(ctx context.Context, stopID string) ([]entity.StopTime, error)

	// GetDepartures retrieves real-time departures for a stop within the
	// preview window in minutes
	GetDepartures(ctx context.Context, stopID string, previewMinutes int) (map[string]any, error)

	// GetStopInfo retrieves stop metadata including coordinates
	GetStopInfo(ctx context.Context, stopID string) (*entity.Stop, error)

	// GetShape retrieves the polyline payload for a route shape
	GetShape(ctx context.Context, shapeID string) (map[string]any, error)
}
