package command

import (
	"chatbot/internal/core/domain"
	"chatbot/internal/core/port"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Start struct {
	registry   port.CommandRegistry
	textSender port.TextSender
	command    string
}

func NewStart(registry port.CommandRegistry, sender port.TextSender, command string) *Start {
	return &Start{registry: registry, textSender: sender, command: command}
}

func (s *Start) GetCommand() string {
	return s.command
}

const welcome = `Hello! I'm a simple chatbot.
Say hi, ask for the time, a joke or a fact, or ask me to add, subtract, multiply or divide numbers.

Commands: %s`

func (s *Start) Respond(ctx context.Context, _ time.Duration, message *domain.Message) error {
	log.Info().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", s.GetCommand()).
		Msg("handling request")

	commands := s.registry.ListCommands()
	slices.Sort(commands)

	_, err := s.textSender.SendMessageReply(ctx, message, fmt.Sprintf(welcome, strings.Join(commands, ", ")))
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}
