package service

import (
	"chatbot/internal/core/domain"
	"chatbot/internal/core/port"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	greetingReply       = "Hello! How can I help you today?"
	farewellReply       = "Goodbye! Have a great day!"
	identityReply       = "I am a simple chatbot written in Go."
	favoriteColorReply  = "My favorite color is blue. What's yours?"
	hobbyReply          = "I enjoy chatting with people like you!"
	thanksReply         = "You're welcome! If you have any other questions, feel free to ask."
	helpReply           = "I can assist you with simple queries. Ask me anything!"
	timeReply           = "The current time is %s."
	abilityReply        = "I can chat with you, tell jokes, and perform simple arithmetic. How can I assist you today?"
	arithmeticHelpReply = "Sure! I can help with simple arithmetic. " +
		"Try asking me to add, subtract, multiply, or divide two numbers."
	resultReply   = "The result is %s."
	apologyReply  = "Sorry, I couldn't perform the calculation. Please check your input and try again."
	fallbackReply = "I'm sorry, I don't understand that. Could you please rephrase?"
)

const timeLayout = "15:04:05"

var jokes = []string{
	"Why don't scientists trust atoms? Because they make up everything!",
	"Why was the math book sad? Because it had too many problems.",
}

var facts = []string{
	"Honey never spoils. Archaeologists have found pots of honey in ancient Egyptian tombs " +
		"that are over 3,000 years old and still edible.",
	"Bananas are berries, but strawberries aren't.",
	"An octopus has three hearts.",
}

// Rule pairs an intent's keyword predicate with the reply it produces. Rules are evaluated in order
// and the first match wins.
type Rule struct {
	Intent  domain.Intent
	Matches func(tokens domain.Tokens) bool
	Reply   func(message string) string
}

type IntentResponder struct {
	normalizer port.Normalizer
	clock      port.Clock
	random     port.RandomSource
	rules      []Rule
	l          *zerolog.Logger
}

type IntentResponderParams struct {
	Normalizer port.Normalizer
	// Clock defaults to the local wall clock.
	Clock port.Clock
	// Random defaults to a randomly seeded source.
	Random port.RandomSource
}

func NewIntentResponder(p IntentResponderParams) *IntentResponder {
	logger := log.With().
		Str("service", "responder").
		Logger()

	r := &IntentResponder{
		normalizer: p.Normalizer,
		clock:      p.Clock,
		random:     p.Random,
		l:          &logger,
	}

	if r.clock == nil {
		r.clock = SystemClock{}
	}

	if r.random == nil {
		r.random = NewLockedRandom(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	r.rules = r.buildRules()

	return r
}

func (r *IntentResponder) buildRules() []Rule {
	return []Rule{
		{Intent: domain.Greeting, Matches: anyOf("hello", "hi"), Reply: fixed(greetingReply)},
		{Intent: domain.Farewell, Matches: anyOf("bye", "goodbye"), Reply: fixed(farewellReply)},
		{Intent: domain.Identity, Matches: anyOf("name"), Reply: fixed(identityReply)},
		{Intent: domain.FavoriteColor, Matches: allOf("favorite", "color"), Reply: fixed(favoriteColorReply)},
		{Intent: domain.Hobby, Matches: anyOf("hobby", "hobbies"), Reply: fixed(hobbyReply)},
		{Intent: domain.Thanks, Matches: anyOf("thank"), Reply: fixed(thanksReply)},
		{Intent: domain.Help, Matches: anyOf("help"), Reply: fixed(helpReply)},
		{Intent: domain.Time, Matches: anyOf("time"), Reply: r.currentTime},
		{Intent: domain.Ability, Matches: anyOf("ability", "abilities"), Reply: fixed(abilityReply)},
		{Intent: domain.Joke, Matches: anyOf("joke"), Reply: r.pick(jokes)},
		{Intent: domain.Fact, Matches: anyOf("fact"), Reply: r.pick(facts)},
		{Intent: domain.ArithmeticHelp, Matches: anyOf("arithmetic", "math"), Reply: fixed(arithmeticHelpReply)},
		{
			Intent:  domain.Arithmetic,
			Matches: anyOf(string(domain.Add), string(domain.Subtract), string(domain.Multiply), string(domain.Divide)),
			Reply:   r.calculate,
		},
	}
}

// Respond returns the reply to a raw user message.
func (r *IntentResponder) Respond(message string) string {
	_, reply := r.Classify(message)
	return reply
}

// Classify returns the matched intent together with its reply.
func (r *IntentResponder) Classify(message string) (domain.Intent, string) {
	tokens := r.normalizer.Normalize(message)

	for _, rule := range r.rules {
		if rule.Matches(tokens) {
			r.l.Debug().Strs("tokens", tokens).Str("intent", string(rule.Intent)).Msg("matched intent")
			return rule.Intent, rule.Reply(message)
		}
	}

	r.l.Debug().Strs("tokens", tokens).Msg("no intent matched")

	return domain.Unknown, fallbackReply
}

func (r *IntentResponder) Intents() []domain.Intent {
	intents := make([]domain.Intent, 0, len(r.rules)+1)
	for _, rule := range r.rules {
		intents = append(intents, rule.Intent)
	}

	return append(intents, domain.Unknown)
}

func (r *IntentResponder) currentTime(_ string) string {
	return fmt.Sprintf(timeReply, r.clock.Now().Format(timeLayout))
}

func (r *IntentResponder) pick(pool []string) func(string) string {
	return func(_ string) string {
		return pool[r.random.IntN(len(pool))]
	}
}

func (r *IntentResponder) calculate(message string) string {
	result, err := Evaluate(message)
	if err != nil {
		r.l.Debug().Err(err).Str("message", message).Msg("calculation failed")
		return apologyReply
	}

	return fmt.Sprintf(resultReply, FormatNumber(result))
}

func anyOf(words ...string) func(domain.Tokens) bool {
	return func(tokens domain.Tokens) bool {
		return tokens.ContainsAny(words...)
	}
}

func allOf(words ...string) func(domain.Tokens) bool {
	return func(tokens domain.Tokens) bool {
		return tokens.ContainsAll(words...)
	}
}

func fixed(reply string) func(string) string {
	return func(_ string) string {
		return reply
	}
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// LockedRandom makes a rand.Source safe to share between concurrently running handlers.
type LockedRandom struct {
	mutex sync.Mutex
	rand  *rand.Rand
}

func NewLockedRandom(src rand.Source) *LockedRandom {
	return &LockedRandom{rand: rand.New(src)}
}

func (l *LockedRandom) IntN(n int) int {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.rand.IntN(n)
}
