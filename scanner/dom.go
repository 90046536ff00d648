package scanner

import (
	"fmt"
)

// FileRef names the document a position belongs to.
type FileRef string

// Pos represents a position in a source file with line and column numbers.
// Line and column are 1-indexed for human-readable error messages; the column
// counts bytes of the original, unelided line.
type Pos struct {
	File FileRef `json:"file" yaml:"file" toml:"file"`
	Line int     `json:"line" yaml:"line" toml:"line"`
	Col  int     `json:"col" yaml:"col" toml:"col"`
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// Kind tells the two findings of the scanner apart.
type Kind int

const (
	UnexpectedClose Kind = iota + 1
	UnclosedOpen
)

func (k Kind) String() string {
	switch k {
	case UnexpectedClose:
		return "unexpected_close"
	case UnclosedOpen:
		return "unclosed_open"
	default:
		return "unknown"
	}
}

// MarshalText lets the exporters write the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Open is a pending '(' on the open stack.
type Open struct {
	Pos
	Snippet string // the stripped raw line the parenthesis was found on
	Callee  string // identifier right before the parenthesis, if any
}

// Diagnostic is a single finding of parenthesis imbalance.
type Diagnostic struct {
	Kind    Kind   `json:"kind" yaml:"kind" toml:"kind"`
	Pos     Pos    `json:"pos" yaml:"pos" toml:"pos"`
	Region  int    `json:"region" yaml:"region" toml:"region"`
	Snippet string `json:"snippet" yaml:"snippet" toml:"snippet"`
	Callee  string `json:"callee,omitempty" yaml:"callee,omitempty" toml:"callee,omitempty"`
}

// Message returns the human readable description of the finding.
func (d Diagnostic) Message() string {
	switch d.Kind {
	case UnexpectedClose:
		return "Unexpected closing parenthesis"
	case UnclosedOpen:
		if d.Callee != "" {
			return fmt.Sprintf("Unclosed parenthesis after %s", d.Callee)
		}
		return "Unclosed parenthesis"
	default:
		return "Unknown finding"
	}
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d %s", d.Pos.File, d.Pos.Line, d.Pos.Col, d.Message())
}

// WithoutPos strips the file reference; handy when comparing findings
// from documents loaded under different names.
func (d Diagnostic) WithoutPos() Diagnostic {
	d.Pos.File = ""
	return d
}
