package shell

import (
	"io"

	"github.com/brettbedarf/ysh/filesystem"
	"github.com/google/uuid"
)

// Session is the state shared by every verb handler for the lifetime of the
// process: the tree (root, current directory, path stack), the prompt, the
// exit status and where output goes.
type Session struct {
	ID         uuid.UUID // Correlates log lines of one session
	Tree       *filesystem.Tree
	Prompt     string
	ExitStatus int
	Out        io.Writer // verb output
	Err        io.Writer // "<verb>: <message>" error reports
}

// NewSession creates a session at the root of tree
func NewSession(tree *filesystem.Tree, prompt string, out, errOut io.Writer) *Session {
	return &Session{
		ID:     uuid.New(),
		Tree:   tree,
		Prompt: prompt,
		Out:    out,
		Err:    errOut,
	}
}
