package scanner

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"\n", []string{""}},
		{"a", []string{"a"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			doc := ParseString("test.html", tt.input)
			assert.Equal(t, tt.expected, doc.Lines)
			assert.Equal(t, len(tt.expected), doc.Len())
		})
	}
}

func TestDocument_Line(t *testing.T) {
	doc := ParseString("test.html", "one\ntwo\n")
	assert.Equal(t, "one", doc.Line(1))
	assert.Equal(t, "two", doc.Line(2))
	assert.Equal(t, "", doc.Line(0))
	assert.Equal(t, "", doc.Line(3))
	assert.False(t, doc.Empty())
	assert.True(t, ParseString("empty.html", "").Empty())
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"web/quiz.html": &fstest.MapFile{Data: []byte("<script>\nf(\n</script>\n")},
	}

	doc, err := Load(fsys, "web/quiz.html", "web/quiz.html")
	require.NoError(t, err)
	assert.Equal(t, FileRef("web/quiz.html"), doc.File)
	assert.Equal(t, []string{"<script>", "f(", "</script>"}, doc.Lines)

	_, err = Load(fsys, "missing.html", "missing.html")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
