package port

import (
	"chatbot/internal/core/domain"
	"time"
)

type Lemmatizer interface {
	// Lemma reduces a lowercase word to its dictionary base form, or returns it unchanged if unknown.
	Lemma(word string) string
}

type Normalizer interface {
	// Normalize turns a raw message into the token sequence used for intent matching.
	Normalize(message string) domain.Tokens
}

type Responder interface {
	// Respond returns the bot's reply to a raw user message. It never fails.
	Respond(message string) string
	// Intents lists the recognized intents in evaluation order.
	Intents() []domain.Intent
}

type Clock interface {
	Now() time.Time
}

type RandomSource interface {
	// IntN returns a non-negative pseudo-random number in [0,n).
	IntN(n int) int
}
