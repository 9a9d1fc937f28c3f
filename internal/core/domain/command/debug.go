package command

import (
	"chatbot/internal/core/domain"
	"chatbot/internal/core/port"
	"context"
	"fmt"
	"runtime"
	"runtime/metrics"
	"time"

	"github.com/rs/zerolog/log"
)

type Debug struct {
	responder  port.Responder
	textSender port.TextSender
	command    string
	started    time.Time
}

func NewDebug(responder port.Responder, sender port.TextSender, command string) *Debug {
	return &Debug{responder: responder, textSender: sender, command: command, started: time.Now()}
}

func (d *Debug) GetCommand() string {
	return d.command
}

const kb = 1024
const debugTemplate = `allocated mem: %d KB
heap: %d KB
goroutines: %d
uptime: %s
intents: %d
compiled with %s for %s-%s
`

func (d *Debug) Respond(ctx context.Context, _ time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", d.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	data := []metrics.Sample{
		{Name: "/memory/classes/total:bytes"},
		{Name: "/memory/classes/heap/objects:bytes"},
	}
	metrics.Read(data)

	_, err := d.textSender.SendMessageReply(ctx, message,
		fmt.Sprintf(
			debugTemplate,
			data[0].Value.Uint64()/kb,
			data[1].Value.Uint64()/kb,
			runtime.NumGoroutine(),
			time.Since(d.started).Truncate(time.Second),
			len(d.responder.Intents()),
			runtime.Version(), runtime.GOOS, runtime.GOARCH,
		))
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}
