// Package mtd implements the transit schedule feed client against the
// CUMTD-style developer API. The provider's raw record shape stays inside this
// package; callers only see normalized entities.
package mtd

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bustracker/config"
	"bustracker/internal/domain/entity"
	"bustracker/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const dateParamLayout = "20060102"

// Fallback coordinates for stops the feed returns without a location.
var fallbackCoords = map[string]orb.Point{
	"IU":   {-88.2272, 40.1099}, // Illini Union
	"IU:1": {-88.2272, 40.1099},
	"IU:2": {-88.2272, 40.1099},
}

// Client talks to the schedule feed over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a schedule feed client. It returns nil when the feed is
// not configured; the poll scheduler refuses to start without it.
func NewClient(cfg *config.MTDConfig, logger *slog.Logger) service.ScheduleService {
	if cfg == nil || cfg.APIKey == "" {
		return nil
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// rawStopTime mirrors the feed's getstoptimesbystop record shape.
type rawStopTime struct {
	ArrivalTime string         `json:"arrival_time"`
	StopID      string         `json:"stop_id"`
	StopPoint   map[string]any `json:"stop_point"`
	Trip        struct {
		TripID string `json:"trip_id"`
	} `json:"trip"`
}

type stopTimesResponse struct {
	StopTimes []rawStopTime `json:"stop_times"`
}

// StopTimesByStop returns the normalized schedule entries for one stop on the
// given service date. The feed wants the parent stop id; when the caller asks
// for a stop point ("IU:1") the result is filtered locally.
func (c *Client) StopTimesByStop(ctx context.Context, stopID string, date time.Time) ([]entity.StopTime, error) {
	parentID, pointID := splitStopID(stopID)

	body, err := c.get(ctx, "getstoptimesbystop", url.Values{
		"stop_id": {parentID},
		"date":    {date.Format(dateParamLayout)},
	})
	if err != nil {
		return nil, err
	}

	var resp stopTimesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "decode stop times response")
	}

	stopTimes := make([]entity.StopTime, 0, len(resp.StopTimes))
	for _, st := range resp.StopTimes {
		if pointID != "" && !rawStopTimeMatchesPoint(st, parentID, pointID) {
			continue
		}
		if st.Trip.TripID == "" || st.ArrivalTime == "" {
			continue
		}
		stopTimes = append(stopTimes, entity.StopTime{
			TripID:      st.Trip.TripID,
			ArrivalTime: st.ArrivalTime,
		})
	}

	return stopTimes, nil
}

// DeparturesByStop passes the feed's live departure payload through after
// local stop-point filtering. Used by the proxy surface only.
func (c *Client) DeparturesByStop(ctx context.Context, stopID string, previewMinutes int) (map[string]any, error) {
	parentID, pointID := splitStopID(stopID)
	if previewMinutes <= 0 {
		previewMinutes = 60
	}

	body, err := c.get(ctx, "getdeparturesbystop", url.Values{
		"stop_id": {parentID},
		"pt":      {strconv.Itoa(previewMinutes)},
	})
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "decode departures response")
	}

	if pointID != "" {
		if departures, ok := payload["departures"].([]any); ok {
			payload["departures"] = filterByStopPoint(departures, parentID, pointID)
		}
	}

	return payload, nil
}

// ShapeByID passes the feed's route shape payload through untouched. Used by
// the proxy surface only.
func (c *Client) ShapeByID(ctx context.Context, shapeID string) (map[string]any, error) {
	body, err := c.get(ctx, "getshape", url.Values{
		"shape_id": {shapeID},
	})
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "decode shape response")
	}

	return payload, nil
}

// StopInfo resolves a stop's name and coordinates, falling back to the
// hard-coded table when the feed has no location for it.
func (c *Client) StopInfo(ctx context.Context, stopID string) (*entity.Stop, error) {
	parentID, pointID := splitStopID(stopID)

	body, err := c.get(ctx, "getstop", url.Values{"stop_id": {parentID}})
	if err != nil {
		if stop := fallbackStop(stopID, parentID, pointID); stop != nil {
			c.logger.Warn("stop info unavailable upstream, using fallback coordinates",
				slog.String("stop_id", stopID),
				slog.Any("error", err),
			)

			return stop, nil
		}

		return nil, err
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "decode stop response")
	}

	stopObj := pickStopObject(payload)
	chosen := stopObj
	if pointID != "" {
		if points, ok := stopObj["stop_points"].([]any); ok {
			for _, p := range points {
				pm, ok := p.(map[string]any)
				if !ok {
					continue
				}
				if objectMatchesPoint(pm, parentID, pointID) {
					chosen = pm

					break
				}
			}
		}
	}

	if lon, lat, ok := extractLonLat(chosen); ok {
		id := stringField(chosen, "stop_id")
		if id == "" {
			id = stopID
		}
		name := stringField(chosen, "stop_name")
		if name == "" {
			name = stringField(stopObj, "stop_name")
		}

		return &entity.Stop{
			ID:       id,
			Name:     name,
			Location: orb.Point{lon, lat},
			Source:   "feed",
		}, nil
	}

	if stop := fallbackStop(stopID, parentID, pointID); stop != nil {
		return stop, nil
	}

	return nil, errors.Errorf("stop %s has no coordinates and no fallback", stopID)
}

func (c *Client) get(ctx context.Context, method string, params url.Values) ([]byte, error) {
	params.Set("key", c.apiKey)
	endpoint := c.baseURL + "/" + method + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build feed request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Method: method, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Method: method}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Method: method, Err: err}
	}

	return body, nil
}

// splitStopID separates a stop point id like "IU:1" into its parent stop id
// and the full point id. Feed endpoints generally want the parent id.
func splitStopID(stopID string) (parentID, pointID string) {
	idx := strings.IndexByte(stopID, ':')
	if idx == -1 {
		return stopID, ""
	}

	return stopID[:idx], stopID
}

func rawStopTimeMatchesPoint(st rawStopTime, parentID, pointID string) bool {
	if st.StopID != "" && stopPointIDMatches(st.StopID, parentID, pointID) {
		return true
	}
	if st.StopPoint != nil {
		return objectMatchesPoint(st.StopPoint, parentID, pointID)
	}

	return false
}

// objectMatchesPoint checks a raw feed object against a requested stop point,
// tolerating the feed's spelling variants for the id field.
func objectMatchesPoint(obj map[string]any, parentID, pointID string) bool {
	for _, field := range []string{"stop_id", "stop_point_id"} {
		if id := stringField(obj, field); id != "" && stopPointIDMatches(id, parentID, pointID) {
			return true
		}
	}
	if sp, ok := obj["stop_point"].(map[string]any); ok {
		return objectMatchesPoint(sp, parentID, pointID)
	}

	return false
}

func stopPointIDMatches(id, parentID, pointID string) bool {
	if id == pointID {
		return true
	}
	// Some records carry only the point suffix, e.g. "1" for "IU:1".
	if !strings.Contains(id, ":") && parentID+":"+id == pointID {
		return true
	}

	return false
}

func filterByStopPoint(records []any, parentID, pointID string) []any {
	filtered := make([]any, 0, len(records))
	for _, rec := range records {
		obj, ok := rec.(map[string]any)
		if !ok {
			continue
		}
		if objectMatchesPoint(obj, parentID, pointID) {
			filtered = append(filtered, rec)
		}
	}

	return filtered
}

func pickStopObject(payload map[string]any) map[string]any {
	if stops, ok := payload["stops"].([]any); ok && len(stops) > 0 {
		if first, ok := stops[0].(map[string]any); ok {
			return first
		}
	}
	if stop, ok := payload["stop"].(map[string]any); ok {
		return stop
	}

	return payload
}

// extractLonLat tolerates the feed's many spellings for coordinates.
func extractLonLat(obj map[string]any) (lon, lat float64, ok bool) {
	latVal, latOK := numberField(obj, "stop_lat", "stop_latitude", "stop_point_lat", "latitude", "lat")
	lonVal, lonOK := numberField(obj, "stop_lon", "stop_longitude", "stop_point_lon", "longitude", "lon")
	if !latOK || !lonOK {
		return 0, 0, false
	}

	return lonVal, latVal, true
}

func numberField(obj map[string]any, names ...string) (float64, bool) {
	for _, name := range names {
		if v, ok := obj[name].(float64); ok {
			return v, true
		}
	}

	return 0, false
}

func stringField(obj map[string]any, name string) string {
	v, _ := obj[name].(string)

	return v
}

func fallbackStop(stopID, parentID, pointID string) *entity.Stop {
	key := stopID
	if pointID != "" {
		key = pointID
	}

	point, ok := fallbackCoords[key]
	if !ok {
		point, ok = fallbackCoords[parentID]
	}
	if !ok {
		return nil
	}

	name := "Unknown stop"
	if parentID == "IU" {
		name = "Illini Union"
	}

	return &entity.Stop{
		ID:       key,
		Name:     name,
		Location: point,
		Source:   "fallback",
	}
}
