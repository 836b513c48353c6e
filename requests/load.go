package requests

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brettbedarf/ysh"
	"github.com/brettbedarf/ysh/filesystem"
	"github.com/brettbedarf/ysh/internal/util"
)

// NodeDefs holds the requests parsed from a node-definition file, split by
// kind. Directories are applied before files.
type NodeDefs struct {
	Dirs  []*ysh.DirCreateRequest
	Files []*ysh.FileCreateRequest
}

// LoadNodeDefsFile reads and parses the node-definition file at path.
// Files ending in .json are parsed as a JSON array; anything else as a YAML
// sequence.
func LoadNodeDefsFile(path string) (*NodeDefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSONNodeDefs(data)
	}
	return ParseYAMLNodeDefs(data)
}

// ParseJSONNodeDefs parses a JSON array of node definitions. Entries that
// fail to parse are logged and skipped.
func ParseJSONNodeDefs(data []byte) (*NodeDefs, error) {
	logger := util.GetLogger("ParseJSONNodeDefs")

	var rawNodes []json.RawMessage
	if err := json.Unmarshal(data, &rawNodes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal node definitions: %w", err)
	}

	defs := &NodeDefs{}
	for i, rawNode := range rawNodes {
		nodeType, err := GetNodeType(rawNode)
		if err != nil {
			logger.Error().Err(err).Int("index", i).Msg("Failed to get node type")
			continue
		}
		switch nodeType {
		case ysh.FileNodeType:
			req, err := UnmarshalFileRequest(rawNode)
			if err != nil {
				logger.Error().Err(err).Int("index", i).Msg("Failed to unmarshal file request")
				continue
			}
			defs.Files = append(defs.Files, req)
		case ysh.DirNodeType:
			req, err := UnmarshalDirRequest(rawNode)
			if err != nil {
				logger.Error().Err(err).Int("index", i).Msg("Failed to unmarshal directory request")
				continue
			}
			defs.Dirs = append(defs.Dirs, req)
		default:
			logger.Warn().Str("type", string(nodeType)).Int("index", i).Msg("Unknown node type")
		}
	}
	return defs, nil
}

// ParseYAMLNodeDefs parses a YAML sequence of node definitions. Entries that
// fail to parse are logged and skipped.
func ParseYAMLNodeDefs(data []byte) (*NodeDefs, error) {
	logger := util.GetLogger("ParseYAMLNodeDefs")

	var nodes []yaml.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal node definitions: %w", err)
	}

	defs := &NodeDefs{}
	for i := range nodes {
		node := &nodes[i]
		nodeType, err := GetYAMLNodeType(node)
		if err != nil {
			logger.Error().Err(err).Int("line", node.Line).Msg("Failed to get node type")
			continue
		}
		switch nodeType {
		case ysh.FileNodeType:
			req, err := DecodeFileRequest(node)
			if err != nil {
				logger.Error().Err(err).Int("line", node.Line).Msg("Failed to decode file request")
				continue
			}
			defs.Files = append(defs.Files, req)
		case ysh.DirNodeType:
			req, err := DecodeDirRequest(node)
			if err != nil {
				logger.Error().Err(err).Int("line", node.Line).Msg("Failed to decode directory request")
				continue
			}
			defs.Dirs = append(defs.Dirs, req)
		default:
			logger.Warn().Str("type", string(nodeType)).Int("line", node.Line).Msg("Unknown node type")
		}
	}
	return defs, nil
}

// Apply adds every directory and then every file to tree and returns how
// many of each were added. A request that fails is logged and skipped.
func (d *NodeDefs) Apply(tree *filesystem.Tree) (dirs, files int) {
	logger := util.GetLogger("NodeDefs.Apply")

	for _, req := range d.Dirs {
		if _, err := tree.AddDirNode(req); err != nil {
			logger.Debug().Interface("request", req).Err(err).Msg("Failed to add directory request")
			continue
		}
		dirs++
	}
	for _, req := range d.Files {
		if _, err := tree.AddFileNode(req); err != nil {
			logger.Debug().Interface("request", req).Err(err).Msg("Failed to add file request")
			continue
		}
		files++
	}
	logger.Info().Int("directories", dirs).Int("files", files).Msg("Added new nodes to tree")
	return dirs, files
}
