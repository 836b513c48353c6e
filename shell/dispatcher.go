package shell

import (
	"fmt"

	"github.com/brettbedarf/ysh"
	"github.com/brettbedarf/ysh/internal/util"
)

// Dispatcher routes a tokenized line to the handler registered for its verb.
// It keeps no per-call state; everything persistent lives in the Session.
type Dispatcher struct {
	registry *Registry
}

func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Dispatch runs the handler for words[0]. Handler and lookup errors are
// reported to s.Err as "<verb>: <message>" and set the exit status to 1; the
// only error returned is an [ysh.ExitRequest]. An empty line does nothing.
func (d *Dispatcher) Dispatch(s *Session, words []string) error {
	if len(words) == 0 {
		return nil
	}
	logger := util.GetLogger("Dispatcher")
	verb := words[0]
	logger.Trace().Str("session", s.ID.String()).Strs("words", words).Msg("Dispatch called")

	handler, err := d.registry.Lookup(verb)
	if err == nil {
		err = handler(s, words)
	}
	if err == nil {
		return nil
	}
	if req, ok := ysh.IsExit(err); ok {
		logger.Debug().Str("session", s.ID.String()).Int("status", req.Status).Msg("Exit requested")
		return req
	}

	for _, e := range flatten(err) {
		logger.Debug().Str("session", s.ID.String()).Str("verb", verb).Err(e).Msg("Command failed")
		fmt.Fprintf(s.Err, "%s: %s\n", verb, e)
	}
	s.ExitStatus = 1
	return nil
}

// flatten splits an errors.Join result into its parts so each gets its own
// report line.
func flatten(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []error{err}
}
