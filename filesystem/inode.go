package filesystem

import (
	"github.com/brettbedarf/ysh"
)

// Inode is the identity, type tag and content of one filesystem object.
// Exactly one of file or dir is set, matching ftype.
type Inode struct {
	id    uint64
	ftype ysh.FileType
	file  *PlainFile
	dir   *Directory
}

var _ ysh.NodeInfo = (*Inode)(nil)

// ID returns the inode number; immutable for the inode's lifetime
func (n *Inode) ID() uint64 {
	return n.id
}

func (n *Inode) Type() ysh.FileType {
	return n.ftype
}

func (n *Inode) IsDir() bool {
	return n.ftype == ysh.DirectoryType
}

// Size returns the content size; see [PlainFile.Size] and [Directory.Size]
func (n *Inode) Size() int {
	if n.IsDir() {
		return n.dir.Size()
	}
	return n.file.Size()
}

// Dir returns the directory content or ErrNotADirectory for a plain file.
func (n *Inode) Dir() (*Directory, error) {
	if !n.IsDir() {
		return nil, ysh.ErrNotADirectory
	}
	return n.dir, nil
}

// File returns the plain file content or ErrIsADirectory for a directory.
func (n *Inode) File() (*PlainFile, error) {
	if n.IsDir() {
		return nil, ysh.ErrIsADirectory
	}
	return n.file, nil
}

// ReadFile returns the words of a plain file.
func (n *Inode) ReadFile() ([]string, error) {
	f, err := n.File()
	if err != nil {
		return nil, err
	}
	return f.Read(), nil
}

// WriteFile replaces the words of a plain file.
func (n *Inode) WriteFile(words []string) error {
	f, err := n.File()
	if err != nil {
		return err
	}
	f.Write(words)
	return nil
}

func (n *Inode) MakeSubdir(name string) (*Inode, error) {
	d, err := n.Dir()
	if err != nil {
		return nil, err
	}
	return d.MakeSubdir(name)
}

func (n *Inode) MakeFile(name string) (*Inode, error) {
	d, err := n.Dir()
	if err != nil {
		return nil, err
	}
	return d.MakeFile(name)
}

func (n *Inode) Remove(name string) error {
	d, err := n.Dir()
	if err != nil {
		return err
	}
	return d.Remove(name)
}

// Lookup finds a directory entry by name.
func (n *Inode) Lookup(name string) (*Inode, error) {
	d, err := n.Dir()
	if err != nil {
		return nil, err
	}
	child, ok := d.Lookup(name)
	if !ok {
		return nil, ysh.NewPathError(name, ysh.ErrNotFound)
	}
	return child, nil
}

// clear drops the content so a detached inode holds no references.
func (n *Inode) clear() {
	if n.IsDir() {
		n.dir.entries = map[string]uint64{}
		return
	}
	n.file.words = nil
}
