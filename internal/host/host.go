// Package host connects the quiz client to the environment embedding it.
//
// A Channel is the message bridge of the surrounding chat platform. It is
// told once at startup that the client is ready and may take the full
// viewport, and receives one result payload per submission. When no host is
// configured the log channel stands in and only records the payload.
package host

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// ErrNotReady is returned by SendData when the channel has not completed
// Ready.
var ErrNotReady = errors.New("host channel not ready")

// Channel is the host messaging bridge.
type Channel interface {
	// Name identifies the implementation in logs and diagnostics.
	Name() string

	// Ready announces that the client has started.
	Ready(ctx context.Context) error

	// Expand asks the host to give the client its full viewport.
	Expand(ctx context.Context) error

	// SendData forwards a serialized result payload to the host.
	SendData(ctx context.Context, data string) error

	// Close releases any connection held by the channel.
	Close() error
}

// Config selects and configures the host channel.
type Config struct {
	// WebSocketURL is the address of a mini-app event bridge.
	WebSocketURL string `yaml:"websocket_url"`

	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig configures delivery of results to a Telegram chat.
type TelegramConfig struct {
	Token  string `yaml:"token"`
	ChatID int64  `yaml:"chat_id"`

	// APIEndpoint overrides the Bot API endpoint format
	// (default tgbotapi.APIEndpoint).
	APIEndpoint string `yaml:"api_endpoint"`
}

// Enabled reports whether enough is configured to talk to a chat.
func (c TelegramConfig) Enabled() bool {
	return strings.TrimSpace(c.Token) != "" && c.ChatID != 0
}

// Detect picks the channel implementation for cfg: the WebSocket bridge if
// an address is set, then Telegram, then the logging stub. Detection does no
// I/O; connections are made by Ready.
func Detect(cfg Config, logger *slog.Logger) Channel {
	if logger == nil {
		logger = slog.Default()
	}
	switch {
	case strings.TrimSpace(cfg.WebSocketURL) != "":
		return NewWebSocket(cfg.WebSocketURL, logger)
	case cfg.Telegram.Enabled():
		return NewTelegram(cfg.Telegram, logger)
	default:
		return NewLog(logger)
	}
}

// Start runs the startup handshake: Ready, then Expand. Failures are logged
// and returned joined; the client keeps running without a host either way.
func Start(ctx context.Context, ch Channel, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	var errs []error
	if err := ch.Ready(ctx); err != nil {
		logger.Warn("host ready failed", "channel", ch.Name(), "err", err)
		errs = append(errs, err)
	}
	if err := ch.Expand(ctx); err != nil {
		logger.Warn("host expand failed", "channel", ch.Name(), "err", err)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Deliver sends data and swallows the outcome: a failed delivery is logged
// and never reported to the user, since scoring already happened locally.
func Deliver(ctx context.Context, ch Channel, data string, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := ch.SendData(ctx, data); err != nil {
		logger.Error("send result to host", "channel", ch.Name(), "err", err)
		return
	}
	logger.Info("result sent to host", "channel", ch.Name())
}
