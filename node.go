// Package ysh contains the core domain types shared by the ysh in-memory
// filesystem and its shell: the file type tag, read-only node access, node
// creation requests and the error kinds.
package ysh

// FileType tags an inode as a plain file or a directory
type FileType int

const (
	PlainType FileType = iota
	DirectoryType
)

func (t FileType) String() string {
	switch t {
	case PlainType:
		return "PLAIN_TYPE"
	case DirectoryType:
		return "DIRECTORY_TYPE"
	default:
		return "UNKNOWN_TYPE"
	}
}

// NodeInfo provides read-only access to inode information for external consumers
type NodeInfo interface {
	// ID returns the unique inode number
	ID() uint64

	// Type returns the inode's type tag
	Type() FileType

	// Size returns the word-based size of a file or the entry count of a directory
	Size() int
}
