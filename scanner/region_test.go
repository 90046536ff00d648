package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRegions(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		all      bool
		expected []Region
	}{
		{
			name:     "no start marker",
			lines:    []string{"<html>", "f(", "</html>"},
			expected: nil,
		},
		{
			name:  "single region",
			lines: []string{"<html>", "<script>", "x", "y", "</script>", "z"},
			expected: []Region{
				{Index: 1, StartMarker: 2, Start: 3, Stop: 4, EndMarker: 5, Terminated: true},
			},
		},
		{
			name:  "no end marker runs to end of document",
			lines: []string{"<script>", "a", "b"},
			expected: []Region{
				{Index: 1, StartMarker: 1, Start: 2, Stop: 3},
			},
		},
		{
			name:  "start marker on the last line",
			lines: []string{"a", "<script>"},
			expected: []Region{
				{Index: 1, StartMarker: 2, Start: 3, Stop: 2},
			},
		},
		{
			name:  "end marker right after start marker",
			lines: []string{"<script>", "</script>"},
			expected: []Region{
				{Index: 1, StartMarker: 1, Start: 2, Stop: 1, EndMarker: 2, Terminated: true},
			},
		},
		{
			name:  "end marker before start marker is ignored",
			lines: []string{"</script>", "<script>", "a", "</script>"},
			expected: []Region{
				{Index: 1, StartMarker: 2, Start: 3, Stop: 3, EndMarker: 4, Terminated: true},
			},
		},
		{
			name:  "end marker on the start line is not seen",
			lines: []string{"<script>x</script>", "a", "</script>"},
			expected: []Region{
				{Index: 1, StartMarker: 1, Start: 2, Stop: 2, EndMarker: 3, Terminated: true},
			},
		},
		{
			name:  "only the first region by default",
			lines: []string{"<script>", "a", "</script>", "<script>", "b", "</script>"},
			expected: []Region{
				{Index: 1, StartMarker: 1, Start: 2, Stop: 2, EndMarker: 3, Terminated: true},
			},
		},
		{
			name:  "all regions",
			lines: []string{"<script>", "a", "</script>", "html", "<script>", "b", "c"},
			all:   true,
			expected: []Region{
				{Index: 1, StartMarker: 1, Start: 2, Stop: 2, EndMarker: 3, Terminated: true},
				{Index: 2, StartMarker: 5, Start: 6, Stop: 7},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &Document{File: "test.html", Lines: tt.lines}
			assert.Equal(t, tt.expected, FindRegions(doc, DefaultMarkers(), tt.all))
		})
	}
}

func TestRegion_Len(t *testing.T) {
	assert.Equal(t, 0, Region{Start: 3, Stop: 2}.Len())
	assert.Equal(t, 1, Region{Start: 3, Stop: 3}.Len())
	assert.Equal(t, 10, Region{Start: 1, Stop: 10}.Len())

	r := Region{Index: 2, Start: 5, Stop: 9}
	assert.True(t, r.Contains(5))
	assert.True(t, r.Contains(9))
	assert.False(t, r.Contains(10))
	assert.Equal(t, "region 2: lines 5-9 (no end marker)", r.String())
	r.Terminated = true
	assert.Equal(t, "region 2: lines 5-9", r.String())
}

func TestNewMarkers(t *testing.T) {
	t.Run("literal markers are not patterns", func(t *testing.T) {
		m, err := NewMarkers("a.b", "[end]", false)
		require.NoError(t, err)
		assert.True(t, m.Start.MatchString("xx a.b yy"))
		assert.False(t, m.Start.MatchString("axb"))
		assert.True(t, m.End.MatchString("[end]"))
		assert.False(t, m.End.MatchString("e"))
	})

	t.Run("regexp markers", func(t *testing.T) {
		m, err := NewMarkers(`<script[^>]*>`, `</script>`, true)
		require.NoError(t, err)
		doc := ParseString("test.html", "<script type=\"module\">\nf()\n</script>\n")
		regions := FindRegions(doc, m, false)
		require.Len(t, regions, 1)
		assert.Equal(t, 2, regions[0].Start)
		assert.Equal(t, 2, regions[0].Stop)
	})

	t.Run("empty marker", func(t *testing.T) {
		_, err := NewMarkers("", "</script>", false)
		assert.Error(t, err)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := NewMarkers("(", "</script>", true)
		assert.ErrorContains(t, err, "invalid start marker")
	})
}
