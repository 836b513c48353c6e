package requests

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brettbedarf/ysh"
)

var (
	ErrMissingPath     = errors.New("node definition has no path")
	ErrUnknownNodeType = errors.New("unknown node type")
)

// GetNodeType extracts the node type from JSON without full unmarshaling
func GetNodeType(data []byte) (ysh.NodeCreateRequestType, error) {
	var meta struct {
		Type ysh.NodeCreateRequestType `json:"type"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return "", err
	}
	return meta.Type, nil
}

// GetYAMLNodeType is [GetNodeType] for an already parsed YAML node
func GetYAMLNodeType(node *yaml.Node) (ysh.NodeCreateRequestType, error) {
	var meta struct {
		Type ysh.NodeCreateRequestType `yaml:"type"`
	}
	if err := node.Decode(&meta); err != nil {
		return "", err
	}
	return meta.Type, nil
}

// UnmarshalFileRequest handles file-specific unmarshaling with content
func UnmarshalFileRequest(data []byte) (*ysh.FileCreateRequest, error) {
	var dto FileRequestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	return convertFileDTO(dto)
}

// UnmarshalDirRequest handles explicit directory unmarshaling (no content)
func UnmarshalDirRequest(data []byte) (*ysh.DirCreateRequest, error) {
	var dto DirRequestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	return convertDirDTO(dto)
}

// DecodeFileRequest is [UnmarshalFileRequest] for a YAML node
func DecodeFileRequest(node *yaml.Node) (*ysh.FileCreateRequest, error) {
	var dto FileRequestDTO
	if err := node.Decode(&dto); err != nil {
		return nil, err
	}
	return convertFileDTO(dto)
}

// DecodeDirRequest is [UnmarshalDirRequest] for a YAML node
func DecodeDirRequest(node *yaml.Node) (*ysh.DirCreateRequest, error) {
	var dto DirRequestDTO
	if err := node.Decode(&dto); err != nil {
		return nil, err
	}
	return convertDirDTO(dto)
}

func convertFileDTO(dto FileRequestDTO) (*ysh.FileCreateRequest, error) {
	node, err := convertNodeDTO(dto.NodeRequestDTO, ysh.FileNodeType)
	if err != nil {
		return nil, err
	}
	words := dto.Words
	if words == nil && dto.Text != nil {
		words = strings.Fields(*dto.Text)
	}
	if words == nil {
		words = []string{}
	}
	return &ysh.FileCreateRequest{
		NodeRequest: node,
		Words:       words,
	}, nil
}

func convertDirDTO(dto DirRequestDTO) (*ysh.DirCreateRequest, error) {
	node, err := convertNodeDTO(dto.NodeRequestDTO, ysh.DirNodeType)
	if err != nil {
		return nil, err
	}
	return &ysh.DirCreateRequest{NodeRequest: node}, nil
}

// Conversion logic with defaults in the unmarshaling layer
func convertNodeDTO(dto NodeRequestDTO, want ysh.NodeCreateRequestType) (ysh.NodeRequest, error) {
	if strings.TrimSpace(dto.Path) == "" {
		return ysh.NodeRequest{}, ErrMissingPath
	}
	typ := valueOrDefault(nonEmpty(dto.Type), want)
	if typ != want {
		return ysh.NodeRequest{}, fmt.Errorf("%w: %q", ErrUnknownNodeType, typ)
	}
	return ysh.NodeRequest{Path: dto.Path, Type: typ}, nil
}

func nonEmpty[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

func valueOrDefault[T any](ptr *T, defaultVal T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultVal
}
