package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "circle-backend/internal/domain/models"
	"circle-backend/internal/infrastructure/logger"
	"circle-backend/internal/infrastructure/outbound/metrics/noop"
)

func dialTestHub(t *testing.T) (*Hub, *websocket.Conn) {
	t.Helper()
	hub := NewHub(logger.New("test"), noop.NewNoopMetricsProvider())
	go hub.Run()

	server := httptest.NewServer(Handler(hub))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	// Registration races the dial handshake; give the hub a moment to pick
	// the client up before the test broadcasts.
	time.Sleep(50 * time.Millisecond)

	return hub, conn
}

func TestHub_BroadcastReachesClient(t *testing.T) {
	hub, conn := dialTestHub(t)

	hub.Broadcast(model.Event{Type: model.EventThreadCreated})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event model.Event
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, model.EventThreadCreated, event.Type)
}

func TestHub_TargetedEventCarriesUserID(t *testing.T) {
	hub, conn := dialTestHub(t)

	hub.Broadcast(model.Event{
		Type:    model.EventNotification,
		Message: "someone liked your thread",
		UserID:  7,
	})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event model.Event
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, model.EventNotification, event.Type)
	assert.Equal(t, int64(7), event.UserID)
}
