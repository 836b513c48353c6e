package ysh

// NodeRequest has common fields embedded in concrete request types
type NodeRequest struct {
	Path string
	Type NodeCreateRequestType
}

// NodeCreateRequestType valid types are FileNodeType "file", DirNodeType "dir"
type NodeCreateRequestType string

const (
	FileNodeType NodeCreateRequestType = "file"
	DirNodeType  NodeCreateRequestType = "dir"
)

// FileCreateRequest asks for a plain file at Path holding Words.
// Missing ancestor directories are created.
type FileCreateRequest struct {
	NodeRequest
	Words []string
}

// DirCreateRequest asks for a directory at Path, like `mkdir -p`.
type DirCreateRequest struct {
	NodeRequest
}
