package shell

import (
	"maps"
	"slices"

	"github.com/brettbedarf/ysh"
)

// Handler executes one verb. words[0] is always the verb itself.
type Handler func(s *Session, words []string) error

// Registry maps verb names to handlers. It is built once and never modified.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry copies handlers into a new immutable Registry
func NewRegistry(handlers map[string]Handler) *Registry {
	return &Registry{handlers: maps.Clone(handlers)}
}

// DefaultRegistry returns a Registry holding the built-in verbs
func DefaultRegistry() *Registry {
	return NewRegistry(map[string]Handler{
		"cat":    Cat,
		"cd":     Cd,
		"echo":   Echo,
		"exit":   Exit,
		"ls":     Ls,
		"lsr":    Lsr,
		"make":   Make,
		"mkdir":  Mkdir,
		"prompt": Prompt,
		"pwd":    Pwd,
		"rm":     Rm,
		"rmr":    Rmr,
	})
}

// Lookup returns the handler for verb or ErrNoSuchCommand
func (r *Registry) Lookup(verb string) (Handler, error) {
	h, ok := r.handlers[verb]
	if !ok {
		return nil, ysh.ErrNoSuchCommand
	}
	return h, nil
}

// Verbs returns the registered verb names in sorted order
func (r *Registry) Verbs() []string {
	return slices.Sorted(maps.Keys(r.handlers))
}
