package main

import (
	"chatbot/internal/adapters/handler"
	"chatbot/internal/adapters/lemmatizer"
	"chatbot/internal/adapters/sender"
	"chatbot/internal/adapters/terminal"
	"chatbot/internal/config"
	"chatbot/internal/core/domain/command"
	"chatbot/internal/core/port"
	"chatbot/internal/core/service"
	"context"
	"os"
	"os/signal"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	log.Info().Msg("starting chatbot...")

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}

	logLevel, err := zerolog.ParseLevel(cfg.Bot.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	golem, err := lemmatizer.NewGolem()
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing lemmatizer")
	}

	responder := service.NewIntentResponder(service.IntentResponderParams{
		Normalizer: service.NewTextNormalizer(golem),
	})
	transcript := service.NewTranscript(cfg.Transcript.MaxEntries)

	switch cfg.Bot.Frontend {
	case config.FrontendTelegram:
		runTelegram(ctx, cfg, responder, transcript)
	default:
		runTerminal(ctx, cfg, responder, transcript)
	}
}

func runTerminal(ctx context.Context, cfg *config.Config, responder port.Responder, transcript port.Transcript) {
	s := sender.NewTerminal(os.Stdout)
	registry, chat := buildCommands(s, responder, transcript)

	commandHandler := handler.NewCommand(registry, chat, nil, cfg.Handler.Timeout)

	if err := terminal.New(os.Stdin, os.Stdout, commandHandler).Run(ctx); err != nil {
		log.Error().Err(err).Msg("terminal stopped")
	}
}

func runTelegram(ctx context.Context, cfg *config.Config, responder port.Responder, transcript port.Transcript) {
	opts := []bot.Option{
		bot.WithDefaultHandler(noOpHandler),
	}

	b, err := bot.New(cfg.Telegram.BotToken, opts...)
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing telegram bot")
	}

	s := sender.NewTelegram(b)
	registry, chat := buildCommands(s, responder, transcript)
	authorizer := service.NewAuthorizer(s, cfg.Telegram.AllowedChatIDs, cfg.Telegram.AdminUsername)

	commandHandler := handler.NewCommand(registry, chat, authorizer, cfg.Handler.Timeout)

	b.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, commandHandler.Handle)

	log.Info().Msg("bot listening")
	b.Start(ctx)
}

func buildCommands(s port.TextSender, responder port.Responder,
	transcript port.Transcript) (*command.Registry, *command.Chat) {
	registry := &command.Registry{}

	chat := command.NewChat(command.ChatParams{
		Responder:  responder,
		TextSender: s,
		Transcript: transcript,
		Command:    "/chat",
	})

	registry.Register(chat)
	registry.Register(command.NewStart(registry, s, "/start"))
	registry.Register(command.NewClear(transcript, s, "/clear"))
	registry.Register(command.NewTranscript(transcript, s, "/transcript"))
	registry.Register(command.NewDebug(responder, s, "/debug"))

	return registry, chat
}

func noOpHandler(_ context.Context, _ *bot.Bot, _ *models.Update) {}
