package handler

import (
	"chatbot/internal/core/domain"
	"chatbot/internal/core/domain/command"
	"chatbot/internal/core/port"
	"chatbot/internal/core/service"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

// Command routes slash commands through the registry and everything else, including unknown commands, to the
// chat command.
type Command struct {
	commandRegistry port.CommandRegistry
	chat            port.Command
	authorizer      service.Authorizer
	timeout         time.Duration
}

// NewCommand creates the router. A nil authorizer lets every chat through.
func NewCommand(commandRegistry port.CommandRegistry, chat port.Command, authorizer service.Authorizer,
	timeout time.Duration) *Command {
	return &Command{
		commandRegistry: commandRegistry,
		chat:            chat,
		authorizer:      authorizer,
		timeout:         timeout,
	}
}

func (c *Command) Dispatch(ctx context.Context, message *domain.Message) error {
	handler := c.chat

	if command.IsCommand(message.Text) {
		cmd := command.ParseCommand(message.Text)

		registered, err := c.commandRegistry.Get(cmd)
		switch {
		case err == nil:
			handler = registered
		case errors.Is(err, domain.ErrCommandNotFound):
			log.Debug().Str("command", cmd).Msg("no handler for command, treating as chat")
		default:
			return fmt.Errorf("failed to look up command %s: %w", cmd, err)
		}
	}

	if err := handler.Respond(ctx, c.timeout, message); err != nil {
		return fmt.Errorf("failed to respond to %s: %w", handler.GetCommand(), err)
	}

	return nil
}

// Handle is the go-telegram/bot entry point for text messages.
func (c *Command) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	msg := update.Message

	log.Debug().Str("message", msg.Text).Int64("chatID", msg.Chat.ID).Msg("received message")

	if c.authorizer != nil && !c.authorizer.IsAuthorized(ctx, msg.Chat.ID) {
		return
	}

	err := c.Dispatch(ctx, &domain.Message{
		ID:       msg.ID,
		ChatID:   msg.Chat.ID,
		Username: getUserNameOrFirstName(msg.From),
		Text:     msg.Text,
	})
	if err != nil {
		log.Err(err).Int64("chatID", msg.Chat.ID).Msg("failed to handle message")
	}
}

func getUserNameOrFirstName(user *models.User) string {
	if user == nil {
		return ""
	}

	if user.Username == "" {
		return user.FirstName
	}

	return "@" + user.Username
}
