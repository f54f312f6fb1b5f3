package host

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramChannel delivers results as messages to a Telegram chat through a
// bot.
type TelegramChannel struct {
	cfg        TelegramConfig
	httpClient tgbotapi.HTTPClient
	logger     *slog.Logger

	mu  sync.Mutex
	api *tgbotapi.BotAPI
}

var _ Channel = (*TelegramChannel)(nil)

// NewTelegram creates a TelegramChannel. No request is made until Ready.
func NewTelegram(cfg TelegramConfig, logger *slog.Logger) *TelegramChannel {
	if cfg.APIEndpoint == "" {
		cfg.APIEndpoint = tgbotapi.APIEndpoint
	}
	// The library logs through a package-level logger; keep it off the
	// terminal.
	_ = tgbotapi.SetLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))
	return &TelegramChannel{
		cfg:        cfg,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

func (t *TelegramChannel) Name() string { return "telegram" }

// Ready authenticates the bot token.
func (t *TelegramChannel) Ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	api, err := tgbotapi.NewBotAPIWithClient(t.cfg.Token, t.cfg.APIEndpoint, t.httpClient)
	if err != nil {
		return fmt.Errorf("telegram: authorize bot: %w", err)
	}

	t.mu.Lock()
	t.api = api
	t.mu.Unlock()

	t.logger.Info("telegram host ready", "bot", api.Self.UserName, "chat_id", t.cfg.ChatID)
	return nil
}

// Expand is a no-op: a chat has no viewport to grow.
func (t *TelegramChannel) Expand(context.Context) error { return nil }

// SendData posts data as a text message to the configured chat.
func (t *TelegramChannel) SendData(ctx context.Context, data string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	api := t.api
	t.mu.Unlock()
	if api == nil {
		return ErrNotReady
	}

	msg := tgbotapi.NewMessage(t.cfg.ChatID, data)
	if _, err := api.Send(msg); err != nil {
		return fmt.Errorf("telegram: send message: %w", err)
	}
	return nil
}

func (t *TelegramChannel) Close() error { return nil }
