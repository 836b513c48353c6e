package filesystem

import (
	"fmt"
	"sort"

	"github.com/brettbedarf/ysh"
	"github.com/brettbedarf/ysh/internal/util"
)

// Reserved entry names present in every directory
const (
	CurDir    = "."
	ParentDir = ".."
)

// IsReserved reports whether name is "." or ".."
func IsReserved(name string) bool {
	return name == CurDir || name == ParentDir
}

// Directory content maps entry names to inode numbers in the owning table.
type Directory struct {
	table       *InodeTable
	entries     map[string]uint64
	initialized bool
}

// Dirent is one directory entry resolved to its inode
type Dirent struct {
	Name  string
	Inode *Inode
}

func newDirectory(table *InodeTable) *Directory {
	return &Directory{
		table: table,
		// 0 is never assigned, so reserved entries read as unresolved until Init
		entries: map[string]uint64{CurDir: 0, ParentDir: 0},
	}
}

// Init binds ".." to parent and "." to self. It must be called exactly once,
// before the directory is reachable by any path.
func (d *Directory) Init(parent, self *Inode) error {
	if d.initialized {
		return fmt.Errorf("directory %d already initialized", self.ID())
	}
	if self.dir != d {
		return fmt.Errorf("inode %d does not own this directory", self.ID())
	}
	d.entries[ParentDir] = parent.ID()
	d.entries[CurDir] = self.ID()
	d.initialized = true
	return nil
}

// Size is the entry count including "." and ".."
func (d *Directory) Size() int {
	return len(d.entries)
}

// Lookup returns the inode stored under name
func (d *Directory) Lookup(name string) (*Inode, bool) {
	id, ok := d.entries[name]
	if !ok || id == 0 {
		return nil, false
	}
	return d.table.Get(id)
}

// Entries returns every resolvable entry sorted by name
func (d *Directory) Entries() []Dirent {
	names := make([]string, 0, len(d.entries))
	for name := range d.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Dirent, 0, len(names))
	for _, name := range names {
		if n, ok := d.Lookup(name); ok {
			out = append(out, Dirent{Name: name, Inode: n})
		}
	}
	return out
}

// MakeSubdir adds a new, uninitialized directory under name. The caller must
// call Init on it.
func (d *Directory) MakeSubdir(name string) (*Inode, error) {
	if existing, ok := d.entries[name]; ok {
		return nil, d.existsError(name, existing)
	}
	n := d.table.Create(ysh.DirectoryType)
	d.entries[name] = n.ID()

	logger := util.GetLogger("Directory.MakeSubdir")
	logger.Debug().Str("name", name).Uint64("ino", n.ID()).Msg("Added directory entry")
	return n, nil
}

// MakeFile returns the plain file under name, creating it if absent. An
// existing file keeps its inode so writes overwrite in place.
func (d *Directory) MakeFile(name string) (*Inode, error) {
	if existing, ok := d.Lookup(name); ok {
		if existing.IsDir() {
			return nil, ysh.NewPathError(name, ysh.ErrIsADirectory)
		}
		return existing, nil
	}
	n := d.table.Create(ysh.PlainType)
	d.entries[name] = n.ID()

	logger := util.GetLogger("Directory.MakeFile")
	logger.Debug().Str("name", name).Uint64("ino", n.ID()).Msg("Added file entry")
	return n, nil
}

// Remove detaches the entry under name and forgets its inode. Directories
// must be empty (size 2).
func (d *Directory) Remove(name string) error {
	if IsReserved(name) {
		return ysh.NewPathError(name, ysh.ErrReservedEntry)
	}
	target, ok := d.Lookup(name)
	if !ok {
		return ysh.NewPathError(name, ysh.ErrNotFound)
	}
	if target.IsDir() && target.Size() > 2 {
		return ysh.NewPathError(name, ysh.ErrDirectoryNotEmpty)
	}
	target.clear()
	delete(d.entries, name)
	d.table.Forget(target.ID())

	logger := util.GetLogger("Directory.Remove")
	logger.Debug().Str("name", name).Uint64("ino", target.ID()).Msg("Removed entry")
	return nil
}

func (d *Directory) existsError(name string, id uint64) error {
	msg := "Directory already exists"
	if n, ok := d.table.Get(id); ok && !n.IsDir() {
		msg = "File already exists"
	}
	return &ysh.PathError{Name: name, Msg: msg, Err: ysh.ErrAlreadyExists}
}
