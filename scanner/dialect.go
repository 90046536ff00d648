package scanner

import (
	"fmt"
	"sort"
	"strings"
)

// Quote describes one literal style of a dialect.
type Quote struct {
	Open, Close byte
	// Escape makes the following byte part of the literal; 0 means the
	// dialect escapes by doubling the close delimiter, which needs no special
	// handling since it reads as two adjacent literals.
	Escape byte
	// Multiline literals carry over to the next line when left open. Other
	// literals end with the line unless the newline itself is escaped.
	Multiline bool
	// Interpolation opens an embedded expression inside the literal, closed
	// by the matching '}'. Empty when the literal cannot embed code.
	Interpolation string
}

// Dialect holds the comment and literal syntax of the embedded code.
type Dialect struct {
	Name         string
	LineComment  string
	BlockComment [2]string
	Quotes       []Quote
}

// JavaScript has // and /* */ comments, "double" and 'single' quoted
// strings ending with the line, and `template` literals with ${} expressions.
var JavaScript = Dialect{
	Name:         "javascript",
	LineComment:  "//",
	BlockComment: [2]string{"/*", "*/"},
	Quotes: []Quote{
		{Open: '"', Close: '"', Escape: '\\'},
		{Open: '\'', Close: '\'', Escape: '\\'},
		{Open: '`', Close: '`', Escape: '\\', Multiline: true, Interpolation: "${"},
	},
}

// SQL follows T-SQL: 'strings' with '' escapes, "quoted" and [quoted]
// identifiers, all of which may span lines.
var SQL = Dialect{
	Name:         "sql",
	LineComment:  "--",
	BlockComment: [2]string{"/*", "*/"},
	Quotes: []Quote{
		{Open: '\'', Close: '\'', Multiline: true},
		{Open: '"', Close: '"', Multiline: true},
		{Open: '[', Close: ']', Multiline: true},
	},
}

var dialects = map[string]Dialect{
	"javascript": JavaScript,
	"js":         JavaScript,
	"html":       JavaScript,
	"sql":        SQL,
	"tsql":       SQL,
}

// LookupDialect returns the dialect registered under name (case insensitive).
func LookupDialect(name string) (Dialect, error) {
	d, ok := dialects[strings.ToLower(name)]
	if !ok {
		return Dialect{}, fmt.Errorf("unknown dialect %q, expected one of %s", name, strings.Join(DialectNames(), ", "))
	}
	return d, nil
}

// DialectNames lists the accepted dialect names in sorted order.
func DialectNames() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// quoteFor returns the index of the quote opened by c, or -1.
func (d Dialect) quoteFor(c byte) int {
	for i, q := range d.Quotes {
		if q.Open == c {
			return i
		}
	}
	return -1
}
