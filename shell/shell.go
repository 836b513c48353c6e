// Package shell implements the ysh command layer: the session state, the verb
// registry, the dispatcher and the built-in verbs operating on a
// [filesystem.Tree].
package shell

import (
	"io"
	"strings"

	"github.com/brettbedarf/ysh/filesystem"
)

// Shell ties a session to a dispatcher.
type Shell struct {
	*Session
	dispatcher *Dispatcher
}

// New creates a Shell with the built-in verbs over tree.
func New(tree *filesystem.Tree, prompt string, out, errOut io.Writer) *Shell {
	return NewWithRegistry(tree, prompt, out, errOut, DefaultRegistry())
}

// NewWithRegistry creates a Shell dispatching through registry.
func NewWithRegistry(tree *filesystem.Tree, prompt string, out, errOut io.Writer, registry *Registry) *Shell {
	return &Shell{
		Session:    NewSession(tree, prompt, out, errOut),
		dispatcher: NewDispatcher(registry),
	}
}

// Execute tokenizes line and dispatches it. See [Dispatcher.Dispatch].
func (sh *Shell) Execute(line string) error {
	return sh.dispatcher.Dispatch(sh.Session, ParseLine(line))
}

// ParseLine splits line on whitespace. Blank lines and lines whose first
// word starts with "#" yield no words.
func ParseLine(line string) []string {
	words := strings.Fields(line)
	if len(words) == 0 || strings.HasPrefix(words[0], "#") {
		return nil
	}
	return words
}
