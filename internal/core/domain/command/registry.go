package command

import (
	"chatbot/internal/core/domain"
	"chatbot/internal/core/port"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// Registry maps slash command names to their handlers. Names are matched case-insensitively and the zero
// value is ready to use.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]port.Command
}

func (r *Registry) Register(handler port.Command) {
	name := ParseCommand(handler.GetCommand())

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.handlers == nil {
		r.handlers = make(map[string]port.Command)
	}

	if _, exists := r.handlers[name]; exists {
		log.Warn().Str("command", name).Msg("replacing registered command handler")
	}

	log.Info().Str("command", name).Msg("registering command handler")
	r.handlers[name] = handler
}

func (r *Registry) Get(command string) (port.Command, error) {
	name := ParseCommand(command)
	log.Debug().Str("command", name).Msg("looking up command handler")

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.handlers == nil {
		return nil, domain.ErrRegistryNotInitialized
	}

	handler, ok := r.handlers[name]
	if !ok {
		return nil, domain.ErrCommandNotFound
	}

	return handler, nil
}

// ListCommands returns the registered command names in lexical order.
func (r *Registry) ListCommands() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.handlers))
}

// IsCommand reports whether the text is addressed to a slash command.
func IsCommand(text string) bool {
	return strings.HasPrefix(text, "/")
}

// ParseCommandArgs drops the leading command word and returns the rest of the text, trimmed.
func ParseCommandArgs(text string) string {
	_, args, _ := strings.Cut(strings.TrimSpace(text), " ")
	return strings.TrimSpace(args)
}

// ParseCommand returns the lowercased command of a message, without a trailing "@botname" mention.
func ParseCommand(text string) string {
	word, _, _ := strings.Cut(strings.TrimSpace(text), " ")
	name, _, _ := strings.Cut(word, "@")
	return strings.ToLower(name)
}
