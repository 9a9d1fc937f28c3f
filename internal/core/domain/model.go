package domain

import (
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"
)

type Author string

const (
	User Author = "user"
	Bot  Author = "bot"
)

// Label is how the author is shown in a rendered transcript.
func (a Author) Label() string {
	switch a {
	case User:
		return "User"
	case Bot:
		return "Bot"
	default:
		return string(a)
	}
}

type Message struct {
	ID       int
	ChatID   int64
	Username string
	Text     string
}

type Intent string

const (
	Greeting       Intent = "greeting"
	Farewell       Intent = "farewell"
	Identity       Intent = "identity"
	FavoriteColor  Intent = "favorite_color"
	Hobby          Intent = "hobby"
	Thanks         Intent = "thanks"
	Help           Intent = "help"
	Time           Intent = "time"
	Ability        Intent = "ability"
	Joke           Intent = "joke"
	Fact           Intent = "fact"
	ArithmeticHelp Intent = "arithmetic_help"
	Arithmetic     Intent = "arithmetic"
	Unknown        Intent = "unknown"
)

// Tokens is a normalized token sequence. Order and duplicates are kept.
type Tokens []string

func (t Tokens) Contains(word string) bool {
	return slices.Contains(t, word)
}

// ContainsAny reports whether at least one of words is present.
func (t Tokens) ContainsAny(words ...string) bool {
	for _, w := range words {
		if t.Contains(w) {
			return true
		}
	}

	return false
}

// ContainsAll reports whether every one of words is present.
func (t Tokens) ContainsAll(words ...string) bool {
	for _, w := range words {
		if !t.Contains(w) {
			return false
		}
	}

	return true
}

type Operation string

const (
	Add      Operation = "add"
	Subtract Operation = "subtract"
	Multiply Operation = "multiply"
	Divide   Operation = "divide"
)

// Operations lists the arithmetic keywords in the order they are checked.
var Operations = []Operation{Add, Subtract, Multiply, Divide}

type Entry struct {
	ID     uuid.UUID
	Author Author
	Text   string
	Time   time.Time
}
