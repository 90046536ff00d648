// Package scanner finds unbalanced parentheses in the code embedded in a
// larger text document.
//
// The work happens in a single forward pass: FindRegions picks the active
// lines between a start and an end marker, an Elider strips literal bodies
// and comments from each line, and the Scanner walks what is left keeping a
// stack of open parentheses.
package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/smasher164/xid"
)

const (
	openParen  = '('
	closeParen = ')'
)

// Scanner checks the parentheses of the regions of one document.
type Scanner struct {
	doc     *Document
	dialect Dialect
}

// NewScanner creates a Scanner over doc.
func NewScanner(doc *Document, dialect Dialect) *Scanner {
	return &Scanner{doc: doc, dialect: dialect}
}

// Result holds the findings of one region.
type Result struct {
	Region       Region
	Lines        int // lines with structural content
	CommentLines int // comment-only lines that were skipped
	Diagnostics  []Diagnostic
}

// UnexpectedCloses returns the unexpected ')' findings in line order.
func (r Result) UnexpectedCloses() []Diagnostic {
	return r.filter(UnexpectedClose)
}

// UnclosedOpens returns the '(' left open at the end of the region, the
// most recently opened first.
func (r Result) UnclosedOpens() []Diagnostic {
	return r.filter(UnclosedOpen)
}

// Clean reports whether the region is balanced.
func (r Result) Clean() bool {
	return len(r.Diagnostics) == 0
}

func (r Result) filter(kind Kind) []Diagnostic {
	var result []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Kind == kind {
			result = append(result, d)
		}
	}
	return result
}

// Scan checks every region in order.
func (s *Scanner) Scan(regions []Region) []Result {
	results := make([]Result, 0, len(regions))
	for _, r := range regions {
		results = append(results, s.ScanRegion(r))
	}
	return results
}

// ScanRegion checks a single region. Every region starts with an empty
// open stack and a fresh Elider.
//
// A ')' with nothing open is reported right away and scanning carries on;
// whatever is still open at the end of the region is reported innermost
// first.
func (s *Scanner) ScanRegion(r Region) Result {
	result := Result{Region: r}
	elider := NewElider(s.dialect)

	var stack []Open
	for n := r.Start; n <= r.Stop; n++ {
		raw := s.doc.Line(n)
		line := elider.Elide(n, raw)
		if line.CommentOnly {
			result.CommentLines++
			continue
		}
		if line.Text == "" {
			continue
		}
		result.Lines++

		for i := 0; i < len(line.Text); i++ {
			switch line.Text[i] {
			case openParen:
				stack = append(stack, Open{
					Pos:     Pos{File: s.doc.File, Line: n, Col: line.Col(i)},
					Snippet: strings.TrimSpace(raw),
					Callee:  callee(line.Text[:i]),
				})
			case closeParen:
				if len(stack) == 0 {
					result.Diagnostics = append(result.Diagnostics, Diagnostic{
						Kind:    UnexpectedClose,
						Pos:     Pos{File: s.doc.File, Line: n, Col: line.Col(i)},
						Region:  r.Index,
						Snippet: strings.TrimSpace(raw),
					})
					continue
				}
				stack = stack[:len(stack)-1]
			}
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		o := stack[i]
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Kind:    UnclosedOpen,
			Pos:     o.Pos,
			Region:  r.Index,
			Snippet: o.Snippet,
			Callee:  o.Callee,
		})
	}
	return result
}

// callee returns the identifier (dots allowed, as in console.log) that
// ends prefix, ignoring trailing blanks.
func callee(prefix string) string {
	prefix = strings.TrimRight(prefix, " \t")
	end := len(prefix)
	start := end
	for start > 0 {
		r, w := utf8.DecodeLastRuneInString(prefix[:start])
		if !(xid.Continue(r) || r == '$' || r == '.') {
			break
		}
		start -= w
	}
	name := strings.Trim(prefix[start:end], ".")
	if name == "" {
		return ""
	}
	first, _ := utf8.DecodeRuneInString(name)
	if !(xid.Start(first) || first == '_' || first == '$') {
		return ""
	}
	return name
}
