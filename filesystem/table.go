package filesystem

import (
	"sync/atomic"

	"github.com/brettbedarf/ysh"
	"github.com/brettbedarf/ysh/internal/util"
	"github.com/puzpuzpuz/xsync/v4"
)

// RootIno is the inode number of the first directory created in a table
const RootIno uint64 = 1

// InodeTable allocates and owns every inode by number. Directory entries hold
// numbers, not inodes, so the table is the only place an inode is reachable
// from once its entry is gone.
type InodeTable struct {
	lastIno atomic.Uint64             // Last inode number assigned; never reused
	inodes  *xsync.Map[uint64, *Inode] // maps inode numbers to live inodes
}

func NewInodeTable() *InodeTable {
	return &InodeTable{inodes: xsync.NewMap[uint64, *Inode]()}
}

// Create allocates the next inode number and default-constructs content
// matching ftype. A directory's "." and ".." are unresolved until
// [Directory.Init] is called.
func (t *InodeTable) Create(ftype ysh.FileType) *Inode {
	logger := util.GetLogger("InodeTable.Create")

	n := &Inode{id: t.lastIno.Add(1), ftype: ftype}
	switch ftype {
	case ysh.DirectoryType:
		n.dir = newDirectory(t)
	default:
		n.ftype = ysh.PlainType
		n.file = &PlainFile{}
	}
	t.inodes.Store(n.id, n)
	logger.Trace().Uint64("ino", n.id).Stringer("type", n.ftype).Msg("Created inode")
	return n
}

// Get returns the live inode with the given number
func (t *InodeTable) Get(id uint64) (*Inode, bool) {
	return t.inodes.Load(id)
}

// Forget drops a detached inode so it can be reclaimed
func (t *InodeTable) Forget(id uint64) {
	logger := util.GetLogger("InodeTable.Forget")
	if _, ok := t.inodes.LoadAndDelete(id); ok {
		logger.Trace().Uint64("ino", id).Msg("Forgot inode")
	}
}

// Len returns the number of live inodes
func (t *InodeTable) Len() int {
	return t.inodes.Size()
}
