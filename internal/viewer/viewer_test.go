package viewer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/anthill/internal/events"
)

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Registration races the dial; wait for the hub to see the client.
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)

	var evs events.Stream
	evs.Push(7, events.BlightStruck{Tile: "compost", Contamination: 0.03, DurationTicks: 300})
	hub.Broadcast(7, evs)

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, frame, err := conn.ReadMessage()
	require.NoError(t, err)

	var batch TickBatch
	require.NoError(t, json.Unmarshal(frame, &batch))
	assert.Equal(t, uint64(7), batch.Tick)
	require.Len(t, batch.Events, 1)
	assert.Equal(t, events.KindBlightStruck, batch.Events[0].Kind)
}

func TestHubDropsClosedClients(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 },
		time.Second, 10*time.Millisecond)
}

func TestStatusEndpoint(t *testing.T) {
	s := &Server{
		Hub: NewHub(),
		Status: func() Status {
			return Status{
				Tick:      123456,
				Ants:      4,
				Visitors:  1,
				Sanity:    97,
				Resources: map[string]float64{"nutrients": 1234.5678},
			}
		},
	}
	mux := http.NewServeMux()
	s.Routes(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "123,456", body["tick_pretty"])
	assert.Equal(t, 4.0, body["ants"])
	resources := body["resources"].(map[string]any)
	assert.Equal(t, "1,234.57", resources["nutrients"])
}

func TestEventsEndpointWithoutStore(t *testing.T) {
	s := &Server{Hub: NewHub(), Status: func() Status { return Status{} }}
	mux := http.NewServeMux()
	s.Routes(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
