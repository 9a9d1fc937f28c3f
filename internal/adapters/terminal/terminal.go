package terminal

import (
	"bufio"
	"chatbot/internal/core/domain"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

// ChatID identifies the single conversation of a terminal session.
const ChatID int64 = 1

const (
	banner = "Chat with the bot! Type /start for commands, Ctrl+D to quit."
	prompt = "You: "
)

type Dispatcher interface {
	Dispatch(ctx context.Context, message *domain.Message) error
}

// Terminal reads one message per line and hands it to the dispatcher, which prints the reply.
type Terminal struct {
	in         io.Reader
	out        io.Writer
	dispatcher Dispatcher
}

func New(in io.Reader, out io.Writer, dispatcher Dispatcher) *Terminal {
	return &Terminal{in: in, out: out, dispatcher: dispatcher}
}

// Run blocks until the input is exhausted or the context is cancelled.
func (t *Terminal) Run(ctx context.Context) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(t.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	fmt.Fprintln(t.out, banner)

	id := 0
	for {
		fmt.Fprint(t.out, prompt)

		select {
		case <-ctx.Done():
			fmt.Fprintln(t.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(t.out)
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}
				return nil
			}

			text := strings.TrimSpace(line)
			if text == "" {
				continue
			}

			id++
			err := t.dispatcher.Dispatch(ctx, &domain.Message{
				ID:       id,
				ChatID:   ChatID,
				Username: domain.User.Label(),
				Text:     text,
			})
			if err != nil {
				log.Err(err).Int("messageID", id).Msg("failed to handle message")
			}
		}
	}
}
