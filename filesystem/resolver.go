package filesystem

import (
	"strings"

	"github.com/brettbedarf/ysh"
	"github.com/brettbedarf/ysh/internal/util"
)

// Chdir resolves p from the current directory and makes the result current.
//
// An empty path or "/" goes to root, "." does nothing, a leading "/" starts
// from root. Components are consumed left to right: ".." moves to the parent
// (a no-op at root), "." and empty components are skipped, any other name
// must be a directory entry. On failure the tree stays at the last component
// that resolved.
func (t *Tree) Chdir(p string) error {
	logger := util.GetLogger("Tree.Chdir")
	logger.Trace().Str("path", p).Strs("from", t.path).Msg("Chdir called")

	if p == "" || p == "/" {
		t.Reset()
		return nil
	}
	if p == CurDir {
		return nil
	}
	if strings.HasPrefix(p, "/") {
		t.Reset()
	}

	for _, name := range strings.Split(p, "/") {
		switch name {
		case "", CurDir:
			continue
		case ParentDir:
			t.up()
		default:
			child, err := t.cwd.Lookup(name)
			if err != nil {
				return err
			}
			if !child.IsDir() {
				return ysh.NewPathError(name, ysh.ErrNotADirectory)
			}
			t.cwd = child
			t.path = append(t.path, name)
		}
	}
	return nil
}

// SplitPath splits p into the path of its parent directory and its leaf
// name. The parent is "." for a bare name and "/" for a top-level absolute
// path. A path with no names, such as "/", has leaf ".".
func SplitPath(p string) (parent, leaf string) {
	abs := strings.HasPrefix(p, "/")

	names := make([]string, 0, strings.Count(p, "/")+1)
	for _, name := range strings.Split(p, "/") {
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		leaf = CurDir
	} else {
		leaf = names[len(names)-1]
		names = names[:len(names)-1]
	}

	parent = strings.Join(names, "/")
	switch {
	case abs:
		parent = "/" + parent
	case parent == "":
		parent = CurDir
	}
	return parent, leaf
}

// WithParent moves into the parent directory of p, calls fn with that
// directory and the leaf name, then returns to the directory that was
// current before the call. The return always happens, including when
// resolution or fn fails.
func (t *Tree) WithParent(p string, fn func(parent *Inode, leaf string) error) error {
	ctx := t.Visit()
	defer ctx.Close()

	parent, leaf := SplitPath(p)
	if err := t.Chdir(parent); err != nil {
		return err
	}
	return fn(t.cwd, leaf)
}

// Within moves into the directory p, calls fn with it, then returns to the
// directory that was current before the call.
func (t *Tree) Within(p string, fn func(dir *Inode) error) error {
	ctx := t.Visit()
	defer ctx.Close()

	if err := t.Chdir(p); err != nil {
		return err
	}
	return fn(t.cwd)
}

// Resolve returns the inode named by p without changing the current directory.
func (t *Tree) Resolve(p string) (*Inode, error) {
	var found *Inode
	err := t.WithParent(p, func(parent *Inode, leaf string) error {
		n, err := parent.Lookup(leaf)
		if err != nil {
			return err
		}
		found = n
		return nil
	})
	return found, err
}
