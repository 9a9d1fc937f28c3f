package service

import (
	"chatbot/internal/core/domain"
	"chatbot/internal/core/port"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/kljensen/snowball/english"
)

// clitics are split off the end of a word the way the Penn Treebank tokenizer does.
var clitics = []string{"n't", "'s", "'re", "'ve", "'ll", "'d", "'m"}

type TextNormalizer struct {
	lemmatizer port.Lemmatizer
}

func NewTextNormalizer(lemmatizer port.Lemmatizer) *TextNormalizer {
	return &TextNormalizer{lemmatizer: lemmatizer}
}

// Normalize segments the message into words, keeps purely alphabetic ones, drops stopwords and lemmatizes the rest.
func (n *TextNormalizer) Normalize(message string) domain.Tokens {
	tokens := domain.Tokens{}

	iter := words.FromString(message)
	for iter.Next() {
		for _, word := range splitClitic(iter.Value()) {
			if !isAlpha(word) {
				continue
			}

			word = strings.ToLower(word)
			if isStopWord(word) {
				continue
			}

			tokens = append(tokens, n.lemmatizer.Lemma(word))
		}
	}

	return tokens
}

// isStopWord extends the Snowball English list with the contraction fragments of the NLTK list.
func isStopWord(word string) bool {
	switch word {
	case "ain", "aren", "couldn", "d", "didn", "doesn", "hadn", "hasn", "haven", "isn", "ll", "m", "ma",
		"mightn", "mustn", "needn", "o", "re", "shan", "shouldn", "ve", "wasn", "weren", "won", "wouldn", "y":
		return true
	}

	return english.IsStopWord(word)
}

func splitClitic(word string) []string {
	for _, clitic := range clitics {
		for _, form := range []string{clitic, strings.ReplaceAll(clitic, "'", "’")} {
			cut := len(word) - len(form)
			if cut > 0 && strings.EqualFold(word[cut:], form) {
				return []string{word[:cut], word[cut:]}
			}
		}
	}

	return []string{word}
}

func isAlpha(word string) bool {
	if word == "" {
		return false
	}

	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}
