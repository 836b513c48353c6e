package requests

import (
	"github.com/brettbedarf/ysh"
)

// NodeRequestDTO is the JSON/YAML representation of [ysh.NodeRequest]
type NodeRequestDTO struct {
	Path string                    `json:"path" yaml:"path"`
	Type ysh.NodeCreateRequestType `json:"type" yaml:"type"`
}

// FileRequestDTO is the JSON/YAML representation of [ysh.FileCreateRequest].
//
// Content may be given either as a word list or as a single string, which is
// split on whitespace the same way a `make` command line is:
//
//	{"type": "file", "path": "a/notes", "words": ["hello", "world"]}
//	{"type": "file", "path": "a/notes", "text": "hello world"}
//
// When both are present Words wins.
type FileRequestDTO struct {
	NodeRequestDTO `yaml:",inline"`
	Words          []string `json:"words,omitempty" yaml:"words,omitempty"`
	Text           *string  `json:"text,omitempty" yaml:"text,omitempty"`
}

type DirRequestDTO struct {
	NodeRequestDTO `yaml:",inline"`
}
