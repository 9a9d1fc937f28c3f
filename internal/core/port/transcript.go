package port

import "chatbot/internal/core/domain"

type Transcript interface {
	// Append records a line of the conversation shown in the given chat.
	Append(chatID int64, author domain.Author, text string) domain.Entry
	// Clear empties the chat's transcript and returns the number of removed entries.
	Clear(chatID int64) int
	// Render formats the chat's transcript for display.
	Render(chatID int64) string
}
