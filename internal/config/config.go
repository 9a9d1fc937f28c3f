// Package config loads the bot settings from config.toml and CHATBOT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	FrontendTerminal = "terminal"
	FrontendTelegram = "telegram"
)

var ErrMissingBotToken = errors.New("telegram.bot_token is required for the telegram frontend")

type Config struct {
	Bot        Bot        `mapstructure:"bot"`
	Handler    Handler    `mapstructure:"handler"`
	Transcript Transcript `mapstructure:"transcript"`
	Telegram   Telegram   `mapstructure:"telegram"`
}

type Bot struct {
	LogLevel string `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
	Frontend string `mapstructure:"frontend"  validate:"oneof=terminal telegram"`
}

type Handler struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1s,max=10m"`
}

type Transcript struct {
	MaxEntries int `mapstructure:"max_entries" validate:"min=1,max=100000"`
}

type Telegram struct {
	BotToken       string  `mapstructure:"bot_token"`
	AllowedChatIDs []int64 `mapstructure:"allowed_chat_ids"`
	AdminUsername  string  `mapstructure:"admin_username"`
}

// Load reads config.toml from the first of paths that has one. A missing file is not an error; defaults and
// the environment still apply.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	v.SetEnvPrefix("chatbot")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	log.Info().Msg("reading config file...")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
		log.Info().Msg("no config file found, using defaults")
	} else {
		log.Debug().Str("path", v.ConfigFileUsed()).Msg("loaded config file")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Bot.Frontend == FrontendTelegram && cfg.Telegram.BotToken == "" {
		return nil, ErrMissingBotToken
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("bot.log_level", "info")
	v.SetDefault("bot.frontend", FrontendTerminal)
	v.SetDefault("handler.timeout", "10s")
	v.SetDefault("transcript.max_entries", 200)
	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.allowed_chat_ids", []int64{})
	v.SetDefault("telegram.admin_username", "")
}
