package filesystem

import (
	"slices"

	"github.com/brettbedarf/ysh"
	"github.com/brettbedarf/ysh/internal/util"
)

// Tree holds the root directory, the current directory and the path stack of
// names leading from root to the current directory.
//
// NOTE: Tree is not thread-safe; a single session drives it.
type Tree struct {
	table *InodeTable
	root  *Inode
	cwd   *Inode
	path  []string
}

// NewTree creates a table and an initialized root directory whose ".." is
// itself.
func NewTree() *Tree {
	return NewTreeWithTable(NewInodeTable())
}

// NewTreeWithTable creates the root directory in an existing table.
func NewTreeWithTable(table *InodeTable) *Tree {
	logger := util.GetLogger("NewTree")

	root := table.Create(ysh.DirectoryType)
	// root's directory is fresh, Init can't fail
	_ = root.dir.Init(root, root)

	logger.Debug().Uint64("root", root.ID()).Msg("Created tree")
	return &Tree{table: table, root: root, cwd: root}
}

func (t *Tree) Table() *InodeTable {
	return t.table
}

func (t *Tree) Root() *Inode {
	return t.root
}

// Cwd returns the current directory
func (t *Tree) Cwd() *Inode {
	return t.cwd
}

// Path returns a copy of the path stack
func (t *Tree) Path() []string {
	return slices.Clone(t.path)
}

// AtRoot reports whether the current directory is root
func (t *Tree) AtRoot() bool {
	return t.cwd == t.root
}

// Pwd formats the current location as "/" plus the last path component
func (t *Tree) Pwd() string {
	if len(t.path) == 0 {
		return "/"
	}
	return "/" + t.path[len(t.path)-1]
}

// Reset moves to root and clears the path stack
func (t *Tree) Reset() {
	t.cwd = t.root
	t.path = t.path[:0]
}

// MakeDir creates and initializes a subdirectory of parent.
func (t *Tree) MakeDir(parent *Inode, name string) (*Inode, error) {
	child, err := parent.MakeSubdir(name)
	if err != nil {
		return nil, err
	}
	if err := child.dir.Init(parent, child); err != nil {
		return nil, err
	}
	return child, nil
}

// up moves to the parent directory; a no-op at root
func (t *Tree) up() {
	if len(t.path) == 0 {
		t.cwd = t.root
		return
	}
	parent, ok := t.cwd.dir.Lookup(ParentDir)
	if !ok {
		t.Reset()
		return
	}
	t.cwd = parent
	t.path = t.path[:len(t.path)-1]
}
