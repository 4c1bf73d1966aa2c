package service

import (
	"context"
	"time"

	"bustracker/internal/domain/entity"
)

// ScheduleService defines the interface for the upstream transit schedule feed.
// Implementations keep the provider's raw record shape at the fetch boundary
// and return normalized entities.
type ScheduleService interface {
	// StopTimesByStop returns the scheduled stop-time entries for one stop on
	// the given service date. Failures are typed: a non-200 upstream answer
	// and a transport failure are distinguishable by the caller.
	StopTimesByStop(ctx context.Context, stopID string, date time.Time) ([]entity.StopTime, error)

	// DeparturesByStop returns the feed's live departure records for one stop,
	// looking ahead previewMinutes. The raw provider payload is passed through
	// for the proxy surface after local stop-point filtering.
	DeparturesByStop(ctx context.Context, stopID string, previewMinutes int) (map[string]any, error)

	// StopInfo resolves a stop's name and coordinates.
	StopInfo(ctx context.Context, stopID string) (*entity.Stop, error)

	// ShapeByID returns the feed's polyline payload for a route shape. The
	// raw provider payload is passed through untouched.
	ShapeByID(ctx context.Context, shapeID string) (map[string]any, error)
}
