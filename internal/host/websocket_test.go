package host

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBridge(t *testing.T) (string, <-chan Event) {
	t.Helper()
	events := make(chan Event, 8)
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			var ev Event
			if err := conn.ReadJSON(&ev); err != nil {
				close(events)
				return
			}
			events <- ev
		}
	}))
	t.Cleanup(server.Close)
	return "ws" + strings.TrimPrefix(server.URL, "http"), events
}

func nextEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for bridge event")
		return Event{}
	}
}

func TestWebSocket_EventSequence(t *testing.T) {
	url, events := newBridge(t)
	ch := NewWebSocket(url, quietLogger())
	ctx := context.Background()

	require.NoError(t, ch.Ready(ctx))
	require.NoError(t, ch.Expand(ctx))
	require.NoError(t, ch.SendData(ctx, `{"type":"quiz_result"}`))

	assert.Equal(t, EventReady, nextEvent(t, events).EventType)
	assert.Equal(t, EventExpand, nextEvent(t, events).EventType)

	sent := nextEvent(t, events)
	assert.Equal(t, EventDataSend, sent.EventType)
	require.NotNil(t, sent.EventData)
	assert.Equal(t, `{"type":"quiz_result"}`, sent.EventData.Data)

	require.NoError(t, ch.Close())
	require.NoError(t, ch.Close())
}

func TestWebSocket_NotReady(t *testing.T) {
	ch := NewWebSocket("ws://127.0.0.1:1/bridge", quietLogger())
	assert.ErrorIs(t, ch.SendData(context.Background(), "{}"), ErrNotReady)
	assert.ErrorIs(t, ch.Expand(context.Background()), ErrNotReady)
}

func TestWebSocket_DialFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	server.Close()

	ch := NewWebSocket(url, quietLogger())
	err := ch.Ready(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dial")
}
