package service

import (
	"chatbot/internal/core/domain"
	"chatbot/internal/core/port"
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
)

type Authorizer interface {
	IsAuthorized(ctx context.Context, chatID int64) bool
}

type ChatAuthorizer struct {
	allowlist []int64
	admin     string
	sender    port.TextSender
}

// NewAuthorizer restricts the bot to the given chats. An empty allowlist lets every chat through.
func NewAuthorizer(sender port.TextSender, allowlist []int64, admin string) *ChatAuthorizer {
	return &ChatAuthorizer{
		allowlist: allowlist,
		admin:     admin,
		sender:    sender,
	}
}

const forbidden = "You are not authorized to use this bot. Please contact @%s with this ID to get access: %d"

func (a *ChatAuthorizer) IsAuthorized(ctx context.Context, chatID int64) bool {
	if len(a.allowlist) == 0 || slices.Contains(a.allowlist, chatID) {
		return true
	}

	log.Info().Int64("chatID", chatID).Msg("refusing unauthorized chat")

	_, err := a.sender.SendMessageReply(ctx,
		&domain.Message{ChatID: chatID},
		fmt.Sprintf(forbidden, a.admin, chatID))
	if err != nil {
		log.Err(err).Msg("failed to send unauthorized warning")
	}

	return false
}
