package filesystem

import (
	"github.com/brettbedarf/ysh"
	"github.com/brettbedarf/ysh/internal/util"
)

// WalkDirFunc is called for every directory visited by [WalkDirs] with the
// path of the directory relative to where the walk started ("" for the start).
type WalkDirFunc func(dir *Inode, relpath string) error

// WalkDirs visits dir and then each subdirectory, depth first, pre-order, in
// name order. "." and ".." are never followed.
func WalkDirs(dir *Inode, relpath string, fn WalkDirFunc) error {
	d, err := dir.Dir()
	if err != nil {
		return err
	}
	if err := fn(dir, relpath); err != nil {
		return err
	}
	for _, e := range d.Entries() {
		if IsReserved(e.Name) || !e.Inode.IsDir() {
			continue
		}
		if err := WalkDirs(e.Inode, relpath+"/"+e.Name, fn); err != nil {
			return err
		}
	}
	return nil
}

// RemoveAll empties dir bottom-up: subdirectories are emptied before their
// entry is removed, plain files are removed directly. dir itself stays.
func RemoveAll(dir *Inode) error {
	d, err := dir.Dir()
	if err != nil {
		return err
	}
	for _, e := range d.Entries() {
		if IsReserved(e.Name) {
			continue
		}
		if e.Inode.IsDir() && e.Inode.Size() > 2 {
			if err := RemoveAll(e.Inode); err != nil {
				return err
			}
		}
		if err := d.Remove(e.Name); err != nil {
			return err
		}
	}
	return nil
}

// RemoveTree removes the entry named by p and, for a directory, everything
// below it. The current directory is restored afterwards, or moved to its
// nearest surviving ancestor when it was inside the removed subtree.
func (t *Tree) RemoveTree(p string) error {
	logger := util.GetLogger("Tree.RemoveTree")

	return t.WithParent(p, func(parent *Inode, leaf string) error {
		if IsReserved(leaf) {
			return ysh.NewPathError(leaf, ysh.ErrReservedEntry)
		}
		target, err := parent.Lookup(leaf)
		if err != nil {
			return err
		}
		if target.IsDir() {
			if err := RemoveAll(target); err != nil {
				return err
			}
		}
		logger.Debug().Str("path", p).Uint64("ino", target.ID()).Msg("Removing subtree root")
		return parent.Remove(leaf)
	})
}
