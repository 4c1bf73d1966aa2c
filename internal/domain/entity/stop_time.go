// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/paulmach/orb"
)

// StopTime is one scheduled stop-time entry, normalized from the schedule
// feed's raw shape at the fetch boundary. ArrivalTime is the literal feed
// string in HH:MM:SS where HH may run past 23 (service-day clock); it is kept
// verbatim because the arrival key is built from it.
type StopTime struct {
	TripID      string `json:"trip_id"`      // Exact trip identifier; matching is equality only.
	ArrivalTime string `json:"arrival_time"` // Scheduled arrival as the feed published it.
}

// Stop describes a physical transit stop as exposed by the stop-info surface.
type Stop struct {
	ID       string    `json:"stop_id"`   // Stop (or stop point) identifier, e.g. "IU:1".
	Name     string    `json:"stop_name"` // Human-readable stop name.
	Location orb.Point `json:"location"`  // Longitude/latitude of the stop.
	Source   string    `json:"source"`    // Where the coordinates came from: "feed" or "fallback".
}
