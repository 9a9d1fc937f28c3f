package service

import (
	"chatbot/internal/core/domain"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

const DefaultTranscriptSize = 200

// Transcript keeps what has been displayed in each chat. It lives only as long as the process.
type Transcript struct {
	chats      map[int64][]domain.Entry
	maxEntries int
	mutex      *sync.Mutex
	now        func() time.Time
}

func NewTranscript(maxEntries int) *Transcript {
	if maxEntries <= 0 {
		maxEntries = DefaultTranscriptSize
	}

	return &Transcript{
		chats:      make(map[int64][]domain.Entry),
		maxEntries: maxEntries,
		mutex:      &sync.Mutex{},
		now:        time.Now,
	}
}

func (t *Transcript) Append(chatID int64, author domain.Author, text string) domain.Entry {
	id, err := uuid.NewV4()
	if err != nil {
		log.Warn().Err(err).Msg("failed to generate transcript entry id")
	}

	entry := domain.Entry{
		ID:     id,
		Author: author,
		Text:   text,
		Time:   t.now(),
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	entries := append(t.chats[chatID], entry)
	if overflow := len(entries) - t.maxEntries; overflow > 0 {
		entries = append([]domain.Entry(nil), entries[overflow:]...)
	}
	t.chats[chatID] = entries

	return entry
}

func (t *Transcript) Entries(chatID int64) []domain.Entry {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return append([]domain.Entry(nil), t.chats[chatID]...)
}

func (t *Transcript) Clear(chatID int64) int {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	removed := len(t.chats[chatID])
	delete(t.chats, chatID)

	log.Debug().Int64("chatID", chatID).Int("removed", removed).Msg("cleared transcript")

	return removed
}

// Render formats the transcript as "Author: text" blocks separated by blank lines.
func (t *Transcript) Render(chatID int64) string {
	entries := t.Entries(chatID)

	var sb strings.Builder
	for i, entry := range entries {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(entry.Author.Label())
		sb.WriteString(": ")
		sb.WriteString(entry.Text)
	}

	return sb.String()
}
