package command

import (
	"chatbot/internal/core/domain"
	"chatbot/internal/core/port"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Chat answers free text through the intent responder and mirrors the exchange into the transcript.
type Chat struct {
	responder  port.Responder
	textSender port.TextSender
	transcript port.Transcript
	command    string

	l *zerolog.Logger
}

type ChatParams struct {
	Responder  port.Responder
	TextSender port.TextSender
	Transcript port.Transcript
	Command    string
}

func NewChat(p ChatParams) *Chat {
	logger := log.With().
		Str("command", p.Command).
		Str("handler", "chat").
		Logger()

	return &Chat{
		responder:  p.Responder,
		textSender: p.TextSender,
		transcript: p.Transcript,
		command:    p.Command,
		l:          &logger,
	}
}

func (c *Chat) GetCommand() string {
	return c.command
}

func (c *Chat) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := c.l.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("func", "Respond").
		Logger()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text := c.extractText(message.Text)

	entry := c.transcript.Append(message.ChatID, domain.User, text)
	reply := c.responder.Respond(text)
	c.transcript.Append(message.ChatID, domain.Bot, reply)

	l.Debug().Stringer("exchange", entry.ID).
		Str("username", message.Username).
		Str("text", text).
		Str("reply", reply).
		Msg("handled message")

	_, err := c.textSender.SendMessageReply(ctx, message, reply)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}

// extractText strips the chat command when the message was sent as "/chat <text>".
func (c *Chat) extractText(text string) string {
	if c.command != "" && ParseCommand(text) == c.command {
		return ParseCommandArgs(text)
	}

	return strings.TrimSpace(text)
}
