package filesystem

import (
	"fmt"
	"path"
	"strings"

	"github.com/brettbedarf/ysh"
	"github.com/brettbedarf/ysh/internal/util"
)

// AddDirNode creates all missing directories in the request's path, starting
// at root, and returns the leaf. It is equivalent to `mkdir -p`: existing
// directories are reused and an existing leaf is not an error. The current
// directory does not change.
func (t *Tree) AddDirNode(req *ysh.DirCreateRequest) (*Inode, error) {
	logger := util.GetLogger("AddDirNode")

	cur := t.root
	newCnt := 0
	// Traverse the path until we get to existing dir and make
	// any missing along the way
	for _, name := range strings.Split(strings.Trim(req.Path, "/"), "/") {
		switch name {
		case "", CurDir:
			continue
		case ParentDir:
			return nil, ysh.NewPathError(req.Path, ysh.ErrReservedEntry)
		}
		if child, ok := cur.dir.Lookup(name); ok {
			if !child.IsDir() {
				return nil, ysh.NewPathError(name, ysh.ErrNotADirectory)
			}
			cur = child
			continue
		}
		child, err := t.MakeDir(cur, name)
		if err != nil {
			return nil, err
		}
		newCnt++
		cur = child
	}
	if newCnt > 0 {
		logger.Info().Str("path", req.Path).Msg(fmt.Sprintf("Created %d new dir(s)", newCnt))
	}
	return cur, nil
}

// AddFileNode creates any missing directories in the request's path and
// writes the request's words to the leaf file, creating it if needed. An
// existing file is overwritten in place.
func (t *Tree) AddFileNode(req *ysh.FileCreateRequest) (*Inode, error) {
	logger := util.GetLogger("AddFileNode")

	dirPath, name := path.Split(strings.Trim(req.Path, "/"))
	if name == "" || IsReserved(name) {
		return nil, fmt.Errorf("invalid file path %q", req.Path)
	}

	parent := t.root
	if dirPath != "" {
		dirReq := ysh.DirCreateRequest{NodeRequest: req.NodeRequest}
		dirReq.Path = dirPath
		dNode, err := t.AddDirNode(&dirReq)
		if err != nil {
			logger.Error().Err(err).Str("path", dirReq.Path).Msg("Failed to create file's ancestor directory(s)")
			return nil, err
		}
		parent = dNode
	}

	node, err := parent.MakeFile(name)
	if err != nil {
		logger.Error().Err(err).Str("path", req.Path).Msg("Failed to create file")
		return nil, err
	}
	if err := node.WriteFile(req.Words); err != nil {
		return nil, err
	}
	logger.Debug().Str("path", req.Path).Uint64("ino", node.ID()).Msg("Added new file node")
	return node, nil
}
