package scanner

import (
	"io"
	"io/fs"
	"strings"
)

// Document is a source document split into lines. It is never modified
// after loading; all line numbers handed out by this package index into it.
type Document struct {
	File  FileRef
	Lines []string
}

// ParseString splits input into a Document.
//
// Lines are split on \n, a trailing \r is dropped, and a newline at the very
// end of the input does not start another line.
func ParseString(filename FileRef, input string) *Document {
	doc := &Document{File: filename}
	if input == "" {
		return doc
	}
	input = strings.TrimSuffix(input, "\n")
	for _, line := range strings.Split(input, "\n") {
		doc.Lines = append(doc.Lines, strings.TrimSuffix(line, "\r"))
	}
	return doc
}

// Read loads a Document from r.
func Read(filename FileRef, r io.Reader) (*Document, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(filename, string(buf)), nil
}

// Load opens path in fsys and reads it as a Document. The file is closed
// before returning, also when reading fails half way.
func Load(fsys fs.FS, path string, filename FileRef) (doc *Document, err error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			doc, err = nil, cerr
		}
	}()
	return Read(filename, f)
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.Lines)
}

// Line returns line n (1-indexed), or the empty string when n is out of range.
func (d *Document) Line(n int) string {
	if n < 1 || n > len(d.Lines) {
		return ""
	}
	return d.Lines[n-1]
}

// Empty reports whether the document has no lines at all.
func (d *Document) Empty() bool {
	return len(d.Lines) == 0
}
