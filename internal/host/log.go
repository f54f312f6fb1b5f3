package host

import (
	"context"
	"log/slog"
)

// LogChannel is used when no host is present. It accepts every call and
// records payloads in the log.
type LogChannel struct {
	logger *slog.Logger
}

var _ Channel = (*LogChannel)(nil)

// NewLog creates a LogChannel.
func NewLog(logger *slog.Logger) *LogChannel {
	return &LogChannel{logger: logger}
}

func (l *LogChannel) Name() string { return "log" }

func (l *LogChannel) Ready(context.Context) error {
	l.logger.Debug("no host channel configured, running standalone")
	return nil
}

func (l *LogChannel) Expand(context.Context) error { return nil }

func (l *LogChannel) SendData(_ context.Context, data string) error {
	l.logger.Info("host channel unavailable, payload not forwarded", "payload", data)
	return nil
}

func (l *LogChannel) Close() error { return nil }
