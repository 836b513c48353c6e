package ysh

import (
	"errors"
	"fmt"
)

// Error kinds returned by the filesystem and shell packages. Callers match
// them with errors.Is; the concrete error is usually a [*PathError].
var (
	ErrNotFound          = errors.New("No such file or directory")
	ErrNotADirectory     = errors.New("Not a directory")
	ErrIsADirectory      = errors.New("Is a directory")
	ErrAlreadyExists     = errors.New("already exists")
	ErrDirectoryNotEmpty = errors.New("Directory not empty")
	ErrNoSuchCommand     = errors.New("no such function")
	ErrReservedEntry     = errors.New("Reserved directory entry")
)

// PathError records the name an operation failed on and the kind of failure.
// Msg overrides the kind's text when set; the kind is still reachable via
// errors.Is.
type PathError struct {
	Name string
	Msg  string
	Err  error
}

// NewPathError returns a PathError for name using the kind's default text.
func NewPathError(name string, kind error) *PathError {
	return &PathError{Name: name, Err: kind}
}

func (e *PathError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Err.Error()
	}
	if e.Name == "" {
		return msg
	}
	return e.Name + ": " + msg
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// ExitRequest is returned by the exit verb. It is not a failure: the REPL
// stops reading and reports Status.
type ExitRequest struct {
	Status int
}

func (e *ExitRequest) Error() string {
	return fmt.Sprintf("exit(%d)", e.Status)
}

// IsExit reports whether err carries an [ExitRequest] and returns it.
func IsExit(err error) (*ExitRequest, bool) {
	var req *ExitRequest
	if errors.As(err, &req) {
		return req, true
	}
	return nil, false
}
