package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	return dir
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Bot.LogLevel)
	assert.Equal(t, FrontendTerminal, cfg.Bot.Frontend)
	assert.Equal(t, 10*time.Second, cfg.Handler.Timeout)
	assert.Equal(t, 200, cfg.Transcript.MaxEntries)
	assert.Empty(t, cfg.Telegram.BotToken)
	assert.Empty(t, cfg.Telegram.AllowedChatIDs)
}

func TestLoad_File(t *testing.T) {
	dir := writeConfig(t, `
[bot]
log_level = "debug"
frontend = "telegram"

[handler]
timeout = "30s"

[transcript]
max_entries = 50

[telegram]
bot_token = "123:abc"
allowed_chat_ids = [1, -1002]
admin_username = "admin"
`)

	cfg, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Bot.LogLevel)
	assert.Equal(t, FrontendTelegram, cfg.Bot.Frontend)
	assert.Equal(t, 30*time.Second, cfg.Handler.Timeout)
	assert.Equal(t, 50, cfg.Transcript.MaxEntries)
	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
	assert.Equal(t, []int64{1, -1002}, cfg.Telegram.AllowedChatIDs)
	assert.Equal(t, "admin", cfg.Telegram.AdminUsername)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CHATBOT_BOT_LOG_LEVEL", "warn")
	t.Setenv("CHATBOT_TRANSCRIPT_MAX_ENTRIES", "5")

	cfg, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Bot.LogLevel)
	assert.Equal(t, 5, cfg.Transcript.MaxEntries)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "unknown log level",
			content: `[bot]
log_level = "loud"`,
		},
		{
			name: "unknown frontend",
			content: `[bot]
frontend = "gui"`,
		},
		{
			name: "timeout too short",
			content: `[handler]
timeout = "1ms"`,
		},
		{
			name: "telegram without token",
			content: `[bot]
frontend = "telegram"`,
			wantErr: ErrMissingBotToken,
		},
		{
			name:    "malformed toml",
			content: `[bot`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tc.content))

			require.Error(t, err)
			assert.Nil(t, cfg)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
