package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Mini-app bridge event names.
const (
	EventReady    = "web_app_ready"
	EventExpand   = "web_app_expand"
	EventDataSend = "web_app_data_send"
)

// Event is one frame sent over the WebSocket bridge.
type Event struct {
	EventType string     `json:"eventType"`
	EventData *EventData `json:"eventData,omitempty"`
}

// EventData carries the payload of a data-send event.
type EventData struct {
	Data string `json:"data"`
}

const closeTimeout = time.Second

// WebSocketChannel emits mini-app events to a bridge over a WebSocket.
type WebSocketChannel struct {
	url    string
	dialer *websocket.Dialer
	logger *slog.Logger

	mu   sync.Mutex
	conn *websocket.Conn
}

var _ Channel = (*WebSocketChannel)(nil)

// NewWebSocket creates a WebSocketChannel for url. No connection is made
// until Ready.
func NewWebSocket(url string, logger *slog.Logger) *WebSocketChannel {
	return &WebSocketChannel{
		url:    url,
		dialer: websocket.DefaultDialer,
		logger: logger,
	}
}

func (w *WebSocketChannel) Name() string { return "websocket" }

// Ready connects to the bridge and emits the ready event.
func (w *WebSocketChannel) Ready(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.conn == nil {
		conn, _, err := w.dialer.DialContext(ctx, w.url, nil)
		if err != nil {
			return fmt.Errorf("websocket: dial %s: %w", w.url, err)
		}
		w.conn = conn
		w.logger.Info("websocket host connected", "url", w.url)
	}
	return w.writeLocked(Event{EventType: EventReady})
}

// Expand emits the expand event.
func (w *WebSocketChannel) Expand(context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writeLocked(Event{EventType: EventExpand})
}

// SendData emits a data-send event carrying data.
func (w *WebSocketChannel) SendData(_ context.Context, data string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writeLocked(Event{EventType: EventDataSend, EventData: &EventData{Data: data}})
}

// Close sends a close frame and closes the connection.
func (w *WebSocketChannel) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.conn == nil {
		return nil
	}
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	writeErr := w.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeTimeout))
	closeErr := w.conn.Close()
	w.conn = nil
	if errors.Is(writeErr, websocket.ErrCloseSent) {
		writeErr = nil
	}
	return errors.Join(writeErr, closeErr)
}

func (w *WebSocketChannel) writeLocked(ev Event) error {
	if w.conn == nil {
		return ErrNotReady
	}
	if err := w.conn.WriteJSON(ev); err != nil {
		return fmt.Errorf("websocket: write %s: %w", ev.EventType, err)
	}
	return nil
}
