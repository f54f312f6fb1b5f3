package host

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// botServer fakes the two Bot API methods the channel uses.
type botServer struct {
	mu       sync.Mutex
	messages []map[string]string
}

func (b *botServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Quiz","username":"quiz_bot"}}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			b.mu.Lock()
			b.messages = append(b.messages, map[string]string{
				"chat_id": r.Form.Get("chat_id"),
				"text":    r.Form.Get("text"),
			})
			b.mu.Unlock()
			_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":42,"type":"private"},"text":"ok"}}`))
		default:
			_, _ = w.Write([]byte(`{"ok":false,"error_code":404,"description":"Not Found"}`))
		}
	}
}

func newTelegramForTest(t *testing.T, bot *botServer, token string) *TelegramChannel {
	t.Helper()
	server := httptest.NewServer(bot.handler())
	t.Cleanup(server.Close)
	return NewTelegram(TelegramConfig{
		Token:       token,
		ChatID:      42,
		APIEndpoint: server.URL + "/bot%s/%s",
	}, quietLogger())
}

func TestTelegram_ReadyAndSend(t *testing.T) {
	bot := &botServer{}
	ch := newTelegramForTest(t, bot, "123:abc")
	ctx := context.Background()

	require.NoError(t, ch.Ready(ctx))
	require.NoError(t, ch.Expand(ctx))
	require.NoError(t, ch.SendData(ctx, `{"type":"quiz_result","quizId":1,"answers":[]}`))

	require.Len(t, bot.messages, 1)
	assert.Equal(t, "42", bot.messages[0]["chat_id"])
	assert.Equal(t, `{"type":"quiz_result","quizId":1,"answers":[]}`, bot.messages[0]["text"])
}

func TestTelegram_SendBeforeReady(t *testing.T) {
	ch := NewTelegram(TelegramConfig{Token: "t", ChatID: 1}, quietLogger())
	assert.ErrorIs(t, ch.SendData(context.Background(), "{}"), ErrNotReady)
}

func TestTelegram_ReadyRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false,"error_code":401,"description":"Unauthorized"}`))
	}))
	defer server.Close()

	ch := NewTelegram(TelegramConfig{Token: "bad", ChatID: 1, APIEndpoint: server.URL + "/bot%s/%s"}, quietLogger())
	err := ch.Ready(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authorize bot")
}
