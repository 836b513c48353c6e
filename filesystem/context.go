package filesystem

import (
	"slices"

	"github.com/brettbedarf/ysh/internal/util"
)

// VisitContext remembers where the tree was when a temporary traversal
// started. Calling VisitContext.Close() unwinds all cleanup callbacks in
// reverse order, the first of which puts the tree back.
//
// NOTE: VisitContext itself is **not** thread-safe meaning references
// to it should not be shared between goroutines
type VisitContext struct {
	tree     *Tree
	cwd      *Inode
	path     []string
	closeFns []func()
}

// Visit snapshots the current directory and path stack and returns a context
// whose Close restores them.
func (t *Tree) Visit() *VisitContext {
	ctx := &VisitContext{tree: t, cwd: t.cwd, path: slices.Clone(t.path)}
	ctx.AddClose(ctx.restore)
	return ctx
}

// AddClose pushes a cleanup callback onto the end of the stack.
func (ctx *VisitContext) AddClose(fn func()) {
	ctx.closeFns = append(ctx.closeFns, fn)
}

// Close unwinds all cleanup callbacks in reverse order.
// Safe to call even if ctx is nil; it is a no-op in that case, so you can
// `defer ctx.Close()` unconditionally.
//
// Example:
//
//	ctx := tree.Visit()
//	defer ctx.Close()
func (ctx *VisitContext) Close() {
	if ctx == nil {
		return
	}
	for i := len(ctx.closeFns) - 1; i >= 0; i-- {
		ctx.closeFns[i]()
	}
	ctx.closeFns = nil
}

// restore returns to the saved directory. If it was removed meanwhile, the
// saved path is walked again from root as far as it still exists.
func (ctx *VisitContext) restore() {
	t := ctx.tree
	if live, ok := t.table.Get(ctx.cwd.ID()); ok && live == ctx.cwd {
		t.cwd = ctx.cwd
		t.path = slices.Clone(ctx.path)
		return
	}

	logger := util.GetLogger("VisitContext.restore")
	t.Reset()
	for _, name := range ctx.path {
		child, ok := t.cwd.dir.Lookup(name)
		if !ok || !child.IsDir() {
			break
		}
		t.cwd = child
		t.path = append(t.path, name)
	}
	logger.Debug().Strs("saved", ctx.path).Strs("restored", t.path).Msg("Saved directory removed; restored to nearest ancestor")
}
