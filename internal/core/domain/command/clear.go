package command

import (
	"chatbot/internal/core/domain"
	"chatbot/internal/core/port"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Clear empties the chat's transcript. It never touches the responder.
type Clear struct {
	transcript port.Transcript
	textSender port.TextSender
	command    string
}

func NewClear(transcript port.Transcript, sender port.TextSender, command string) *Clear {
	return &Clear{transcript: transcript, textSender: sender, command: command}
}

func (c *Clear) GetCommand() string {
	return c.command
}

const cleared = "Transcript cleared."

func (c *Clear) Respond(ctx context.Context, _ time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", c.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	size := c.transcript.Clear(message.ChatID)

	l.Debug().Int("entries", size).Msg("cleared transcript")

	_, err := c.textSender.SendMessageReply(ctx, message, cleared)
	if err != nil {
		err = fmt.Errorf("error sending transcript clearing response: %w", err)
		return c.textSender.NotifyAndReturnError(ctx, err, message)
	}

	return nil
}
