package scanner

import (
	"strings"
)

// ElidedLine is a line with literal bodies and comments removed, so that
// only structural characters remain.
type ElidedLine struct {
	Line        int    // line number in the original document
	Text        string // elided text
	Cols        []int  // Cols[i] is the 1-indexed column of Text[i] in the original line
	CommentOnly bool   // the line held nothing but a line comment
}

// Col returns the original column of Text[i].
func (l ElidedLine) Col(i int) int {
	if i < 0 || i >= len(l.Cols) {
		return 0
	}
	return l.Cols[i]
}

type mode int

const (
	modeNormal mode = iota
	modeQuote
	modeBlockComment
)

// frame is an expression embedded in a literal, e.g. the ${...} of a template.
type frame struct {
	quote int // index of the literal to resume when the expression closes
	depth int // '{' nesting inside the expression
}

// Elider removes literal bodies and comments line by line. Its state
// survives from one line to the next, so literals and block comments may
// span lines; feed it the lines of one region in order.
type Elider struct {
	dialect Dialect

	mode    mode
	quote   int     // index into dialect.Quotes while in modeQuote
	escaped bool    // the previous byte was the escape character of the literal
	frames  []frame // open interpolations, innermost last
}

// NewElider returns an Elider in its initial state.
func NewElider(dialect Dialect) *Elider {
	return &Elider{dialect: dialect}
}

// Reset drops all carried state.
func (e *Elider) Reset() {
	e.mode = modeNormal
	e.quote = 0
	e.escaped = false
	e.frames = e.frames[:0]
}

// InLiteral reports whether the last line ended inside a literal.
func (e *Elider) InLiteral() bool {
	return e.mode == modeQuote
}

// Elide transforms one line. Literals are replaced by an empty literal of
// the same style, so "a(b" becomes "" and `x${f(y)}z` becomes `${f(y)}`;
// a line comment outside any literal truncates the line.
func (e *Elider) Elide(line int, text string) ElidedLine {
	result := ElidedLine{Line: line}

	lc := e.dialect.LineComment
	if e.mode == modeNormal && lc != "" && strings.HasPrefix(strings.TrimSpace(text), lc) {
		result.CommentOnly = true
		return result
	}

	var out strings.Builder
	emit := func(s string, at int) {
		for j := 0; j < len(s); j++ {
			out.WriteByte(s[j])
			result.Cols = append(result.Cols, at+j+1)
		}
	}

	blockOpen, blockClose := e.dialect.BlockComment[0], e.dialect.BlockComment[1]

	i := 0
	for i < len(text) {
		switch e.mode {
		case modeBlockComment:
			end := strings.Index(text[i:], blockClose)
			if end < 0 {
				i = len(text)
				continue
			}
			i += end + len(blockClose)
			e.mode = modeNormal

		case modeQuote:
			q := e.dialect.Quotes[e.quote]
			c := text[i]
			switch {
			case e.escaped:
				e.escaped = false
				i++
			case q.Escape != 0 && c == q.Escape:
				e.escaped = true
				i++
			case c == q.Close:
				emit(text[i:i+1], i)
				e.mode = modeNormal
				i++
			case q.Interpolation != "" && strings.HasPrefix(text[i:], q.Interpolation):
				emit(q.Interpolation, i)
				e.frames = append(e.frames, frame{quote: e.quote})
				e.mode = modeNormal
				i += len(q.Interpolation)
			default:
				i++
			}

		case modeNormal:
			rest := text[i:]
			if lc != "" && strings.HasPrefix(rest, lc) {
				i = len(text)
				continue
			}
			if blockOpen != "" && strings.HasPrefix(rest, blockOpen) {
				e.mode = modeBlockComment
				i += len(blockOpen)
				continue
			}
			c := text[i]
			if qi := e.dialect.quoteFor(c); qi >= 0 {
				emit(text[i:i+1], i)
				e.mode = modeQuote
				e.quote = qi
				i++
				continue
			}
			if n := len(e.frames); n > 0 {
				top := &e.frames[n-1]
				switch c {
				case '{':
					top.depth++
				case '}':
					if top.depth == 0 {
						emit(text[i:i+1], i)
						e.mode = modeQuote
						e.quote = top.quote
						e.frames = e.frames[:n-1]
						i++
						continue
					}
					top.depth--
				}
			}
			emit(text[i:i+1], i)
			i++
		}
	}

	if e.mode == modeQuote && !e.dialect.Quotes[e.quote].Multiline && !e.escaped {
		// single line literals cannot outlive their line
		e.mode = modeNormal
	}
	e.escaped = false

	result.Text = out.String()
	return result
}

// ElideRegion runs a fresh Elider over the lines of region r.
func ElideRegion(doc *Document, r Region, dialect Dialect) []ElidedLine {
	e := NewElider(dialect)
	result := make([]ElidedLine, 0, r.Len())
	for n := r.Start; n <= r.Stop; n++ {
		result = append(result, e.Elide(n, doc.Line(n)))
	}
	return result
}
