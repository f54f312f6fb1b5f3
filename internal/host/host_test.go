package host

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeChannel records calls and returns canned errors.
type fakeChannel struct {
	readyErr, expandErr, sendErr error
	calls                        []string
	sent                         []string
}

func (f *fakeChannel) Name() string { return "fake" }
func (f *fakeChannel) Ready(context.Context) error {
	f.calls = append(f.calls, "ready")
	return f.readyErr
}
func (f *fakeChannel) Expand(context.Context) error {
	f.calls = append(f.calls, "expand")
	return f.expandErr
}
func (f *fakeChannel) SendData(_ context.Context, data string) error {
	f.calls = append(f.calls, "send")
	f.sent = append(f.sent, data)
	return f.sendErr
}
func (f *fakeChannel) Close() error { return nil }

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"nothing configured", Config{}, "log"},
		{"telegram without chat", Config{Telegram: TelegramConfig{Token: "t"}}, "log"},
		{"telegram", Config{Telegram: TelegramConfig{Token: "t", ChatID: 42}}, "telegram"},
		{"websocket wins", Config{WebSocketURL: "ws://localhost:1", Telegram: TelegramConfig{Token: "t", ChatID: 42}}, "websocket"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := Detect(tt.cfg, quietLogger())
			assert.Equal(t, tt.want, ch.Name())
		})
	}
}

func TestStart_CallsReadyThenExpand(t *testing.T) {
	ch := &fakeChannel{}
	require.NoError(t, Start(context.Background(), ch, quietLogger()))
	assert.Equal(t, []string{"ready", "expand"}, ch.calls)
}

func TestStart_JoinsErrors(t *testing.T) {
	readyErr := errors.New("no bridge")
	ch := &fakeChannel{readyErr: readyErr}
	err := Start(context.Background(), ch, quietLogger())
	assert.ErrorIs(t, err, readyErr)
	assert.Equal(t, []string{"ready", "expand"}, ch.calls, "expand is still attempted")
}

func TestDeliver_SwallowsErrors(t *testing.T) {
	ch := &fakeChannel{sendErr: errors.New("closed")}
	assert.NotPanics(t, func() {
		Deliver(context.Background(), ch, `{"type":"quiz_result"}`, quietLogger())
	})
	assert.Equal(t, []string{`{"type":"quiz_result"}`}, ch.sent)
}

func TestLogChannel(t *testing.T) {
	ch := NewLog(quietLogger())
	ctx := context.Background()
	assert.NoError(t, ch.Ready(ctx))
	assert.NoError(t, ch.Expand(ctx))
	assert.NoError(t, ch.SendData(ctx, "{}"))
	assert.NoError(t, ch.Close())
}
