package mtd

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bustracker/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc := NewClient(&config.MTDConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	client, ok := svc.(*Client)
	require.True(t, ok)

	return client
}

func TestNewClient_NilWithoutCredential(t *testing.T) {
	svc := NewClient(&config.MTDConfig{BaseURL: "https://example.org"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Nil(t, svc)

	svc = NewClient(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Nil(t, svc)
}

func TestStopTimesByStop_NormalizesAndFiltersStopPoint(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getstoptimesbystop", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		// The feed is queried with the parent stop id, never the point id.
		assert.Equal(t, "IU", r.URL.Query().Get("stop_id"))
		assert.Equal(t, "20260829", r.URL.Query().Get("date"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"stop_times": [
				{"arrival_time": "14:02:00", "stop_point": {"stop_id": "IU:1"}, "trip": {"trip_id": "T1"}},
				{"arrival_time": "14:05:00", "stop_point": {"stop_id": "IU:2"}, "trip": {"trip_id": "T2"}},
				{"arrival_time": "25:10:00", "stop_point": {"stop_id": "1"}, "trip": {"trip_id": "T3"}},
				{"arrival_time": "", "stop_point": {"stop_id": "IU:1"}, "trip": {"trip_id": "T4"}}
			]
		}`)
	})

	date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	stopTimes, err := client.StopTimesByStop(context.Background(), "IU:1", date)
	require.NoError(t, err)

	// T2 belongs to another stop point, T4 has no arrival time; T3 matches via
	// the bare point suffix form.
	require.Len(t, stopTimes, 2)
	assert.Equal(t, "T1", stopTimes[0].TripID)
	assert.Equal(t, "14:02:00", stopTimes[0].ArrivalTime)
	assert.Equal(t, "T3", stopTimes[1].TripID)
	assert.Equal(t, "25:10:00", stopTimes[1].ArrivalTime)
}

func TestStopTimesByStop_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.StopTimesByStop(context.Background(), "IU", time.Now())
	require.Error(t, err)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusForbidden, upstreamErr.StatusCode)
}

func TestStopTimesByStop_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Refuse connections from now on.

	svc := NewClient(&config.MTDConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := svc.StopTimesByStop(context.Background(), "IU", time.Now())
	require.Error(t, err)

	var networkErr *NetworkError
	assert.ErrorAs(t, err, &networkErr)
}

func TestStopInfo_FeedCoordinates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getstop", r.URL.Path)
		assert.Equal(t, "IU", r.URL.Query().Get("stop_id"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"stops": [{
				"stop_id": "IU",
				"stop_name": "Illini Union",
				"stop_lat": 40.1099,
				"stop_lon": -88.2272,
				"stop_points": [
					{"stop_id": "IU:1", "stop_lat": 40.11, "stop_lon": -88.227}
				]
			}]
		}`)
	})

	stop, err := client.StopInfo(context.Background(), "IU:1")
	require.NoError(t, err)
	assert.Equal(t, "IU:1", stop.ID)
	assert.Equal(t, "feed", stop.Source)
	assert.InDelta(t, -88.227, stop.Location[0], 1e-9)
	assert.InDelta(t, 40.11, stop.Location[1], 1e-9)
}

func TestStopInfo_FallbackWhenUpstreamFails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	stop, err := client.StopInfo(context.Background(), "IU:1")
	require.NoError(t, err)
	assert.Equal(t, "fallback", stop.Source)
	assert.Equal(t, "Illini Union", stop.Name)

	_, err = client.StopInfo(context.Background(), "NOPE:9")
	assert.Error(t, err)
}

func TestDeparturesByStop_FiltersStopPoint(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getdeparturesbystop", r.URL.Path)
		assert.Equal(t, "30", r.URL.Query().Get("pt"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"departures": [
				{"stop_id": "IU:1", "headsign": "Round Town"},
				{"stop_id": "IU:2", "headsign": "Other Way"}
			]
		}`)
	})

	payload, err := client.DeparturesByStop(context.Background(), "IU:1", 30)
	require.NoError(t, err)

	departures, ok := payload["departures"].([]any)
	require.True(t, ok)
	require.Len(t, departures, 1)
}

func TestShapeByID_PassesPayloadThrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getshape", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "GRN-EVENING", r.URL.Query().Get("shape_id"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"shapes": [
				{"shape_pt_lat": 40.1099, "shape_pt_lon": -88.2272, "shape_pt_sequence": 1},
				{"shape_pt_lat": 40.1105, "shape_pt_lon": -88.2301, "shape_pt_sequence": 2}
			]
		}`)
	})

	payload, err := client.ShapeByID(context.Background(), "GRN-EVENING")
	require.NoError(t, err)

	shapes, ok := payload["shapes"].([]any)
	require.True(t, ok)
	assert.Len(t, shapes, 2)
}

func TestShapeByID_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.ShapeByID(context.Background(), "GRN-EVENING")
	require.Error(t, err)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusBadGateway, upstreamErr.StatusCode)
}
