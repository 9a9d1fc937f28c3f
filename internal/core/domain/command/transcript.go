package command

import (
	"chatbot/internal/core/domain"
	"chatbot/internal/core/port"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Transcript struct {
	transcript port.Transcript
	textSender port.TextSender
	command    string
}

func NewTranscript(transcript port.Transcript, sender port.TextSender, command string) *Transcript {
	return &Transcript{transcript: transcript, textSender: sender, command: command}
}

func (t *Transcript) GetCommand() string {
	return t.command
}

const emptyTranscript = "Transcript is empty."

func (t *Transcript) Respond(ctx context.Context, _ time.Duration, message *domain.Message) error {
	log.Info().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", t.GetCommand()).
		Msg("handling request")

	text := t.transcript.Render(message.ChatID)
	if text == "" {
		text = emptyTranscript
	}

	_, err := t.textSender.SendMessageReply(ctx, message, text)
	if err != nil {
		err = fmt.Errorf("error sending transcript: %w", err)
		return t.textSender.NotifyAndReturnError(ctx, err, message)
	}

	return nil
}
