package lemmatizer

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/rs/zerolog/log"
)

type suffixRule struct {
	suffix      string
	replacement string
}

// nounRules are the plural detachment rules applied to every word. Verb and adjective inflections are
// left alone, so "multiplied" stays "multiplied".
var nounRules = []suffixRule{
	{suffix: "s", replacement: ""},
	{suffix: "ses", replacement: "s"},
	{suffix: "ves", replacement: "f"},
	{suffix: "xes", replacement: "x"},
	{suffix: "zes", replacement: "z"},
	{suffix: "ches", replacement: "ch"},
	{suffix: "shes", replacement: "sh"},
	{suffix: "men", replacement: "man"},
	{suffix: "ies", replacement: "y"},
}

// Golem lemmatizes words as nouns. golem's English dictionary confirms the singular a noun rule derives; words
// without a confirmed singular are returned unchanged.
type Golem struct {
	lemmatizer *golem.Lemmatizer
}

func NewGolem() (*Golem, error) {
	log.Debug().Msg("loading english lemma dictionary")

	l, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load english lemma dictionary: %w", err)
	}

	return &Golem{lemmatizer: l}, nil
}

// Lemma returns the dictionary base form of word when one of the noun rules derives it, otherwise word.
func (g *Golem) Lemma(word string) string {
	if !g.lemmatizer.InDict(word) {
		return word
	}

	base := g.lemmatizer.LemmaLower(word)
	if base == word {
		return word
	}

	for _, rule := range nounRules {
		stem, ok := strings.CutSuffix(word, rule.suffix)
		if ok && stem != "" && stem+rule.replacement == base {
			return base
		}
	}

	return word
}
