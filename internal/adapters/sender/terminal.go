package sender

import (
	"chatbot/internal/core/domain"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog/log"
)

// Terminal prints replies the way the transcript shows them: "Bot: <text>" followed by a blank line.
type Terminal struct {
	out   io.Writer
	mutex sync.Mutex
	sent  int
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) SendMessageReply(_ context.Context, _ *domain.Message, text string) (int, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if _, err := fmt.Fprintf(t.out, "%s: %s\n\n", domain.Bot.Label(), text); err != nil {
		return 0, err
	}

	t.sent++

	return t.sent, nil
}

func (t *Terminal) NotifyAndReturnError(ctx context.Context, err error, message *domain.Message) error {
	log.Error().Err(err).Int("messageID", message.ID).Msg("notifying user of error")

	if _, sendErr := t.SendMessageReply(ctx, message, errorNotice); sendErr != nil {
		return fmt.Errorf("failed to print error notice: %w (original error: %w)", sendErr, err)
	}

	return err
}
