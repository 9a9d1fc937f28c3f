package sender

import (
	"chatbot/internal/core/domain"
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

type TelegramBot interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// TelegramMessageLimit is the maximum number of characters Telegram accepts in one text message.
const TelegramMessageLimit = 4096

const errorNotice = "Sorry, something went wrong. Please try again."

type Telegram struct {
	bot TelegramBot
}

func NewTelegram(bot TelegramBot) *Telegram {
	return &Telegram{bot: bot}
}

// SendMessageReply replies to the message, splitting text that exceeds the Telegram limit. It returns the ID of
// the last sent message.
func (s *Telegram) SendMessageReply(ctx context.Context, message *domain.Message, text string) (int, error) {
	var id int

	for _, chunk := range chunkText(text, TelegramMessageLimit) {
		params := &bot.SendMessageParams{
			ChatID: message.ChatID,
			Text:   chunk,
		}

		if message.ID != 0 {
			params.ReplyParameters = &models.ReplyParameters{
				MessageID: message.ID,
				ChatID:    message.ChatID,
			}
		}

		sent, err := s.bot.SendMessage(ctx, params)
		if err != nil {
			log.Error().Err(err).Int64("chatID", message.ChatID).Msg("failed to send message")
			return 0, err
		}

		if sent != nil {
			id = sent.ID
		}
	}

	return id, nil
}

func (s *Telegram) NotifyAndReturnError(ctx context.Context, err error, message *domain.Message) error {
	log.Error().Err(err).Int64("chatID", message.ChatID).Int("messageID", message.ID).Msg("notifying user of error")

	_, sendErr := s.SendMessageReply(ctx, message, errorNotice)
	if sendErr != nil {
		return fmt.Errorf("failed to send error notice: %w (original error: %w)", sendErr, err)
	}

	return err
}

func chunkText(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	chunks := make([]string, 0, len(runes)/limit+1)
	for len(runes) > 0 {
		n := min(limit, len(runes))
		chunks = append(chunks, string(runes[:n]))
		runes = runes[n:]
	}

	return chunks
}
