package scanner

import (
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scanLines scans all of lines as a single region.
func scanLines(t *testing.T, dialect Dialect, lines ...string) Result {
	t.Helper()
	doc := &Document{File: "test.js", Lines: lines}
	r := Region{Index: 1, Start: 1, Stop: len(lines), Terminated: true}
	return NewScanner(doc, dialect).ScanRegion(r)
}

func TestScanRegion_Balanced(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"nested across lines", []string{"foo(bar(", "))"}},
		{"parenthesis in string", []string{`let s = "(a, (b)";`}},
		{"close in string", []string{`x = ")"`}},
		{"comment line", []string{"// (", "f()"}},
		{"trailing comment", []string{"f() // (((", "g()"}},
		{"block comment", []string{"f(/* ) */)", "/* (", ") */"}},
		{"template literal", []string{"f(`", "  ) (", "`)"}},
		{"template interpolation", []string{"html = `<p>${fmt(a, (b))}</p>(`;"}},
		{"empty", nil},
		{"blank lines", []string{"", "   ", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := scanLines(t, JavaScript, tt.lines...)
			assert.True(t, res.Clean(), repr.String(res.Diagnostics))
		})
	}
}

func TestScanRegion_UnexpectedClose(t *testing.T) {
	res := scanLines(t, JavaScript, "foo))")
	assert.Equal(t, []Diagnostic{
		{Kind: UnexpectedClose, Pos: Pos{File: "test.js", Line: 1, Col: 4}, Region: 1, Snippet: "foo))"},
		{Kind: UnexpectedClose, Pos: Pos{File: "test.js", Line: 1, Col: 5}, Region: 1, Snippet: "foo))"},
	}, res.Diagnostics)
	assert.Empty(t, res.UnclosedOpens())
}

func TestScanRegion_UnclosedOpen(t *testing.T) {
	res := scanLines(t, JavaScript, "  foo(  ")
	require.Len(t, res.Diagnostics, 1, repr.String(res.Diagnostics))
	d := res.Diagnostics[0]
	assert.Equal(t, UnclosedOpen, d.Kind)
	assert.Equal(t, Pos{File: "test.js", Line: 1, Col: 6}, d.Pos)
	assert.Equal(t, "foo(", d.Snippet)
	assert.Equal(t, "foo", d.Callee)
	assert.Equal(t, "test.js:1:6 Unclosed parenthesis after foo", d.Error())
}

func TestScanRegion_UnclosedMostRecentFirst(t *testing.T) {
	res := scanLines(t, JavaScript, "a(", "b(", "c(")
	opens := res.UnclosedOpens()
	require.Len(t, opens, 3)
	var got []string
	for _, o := range opens {
		got = append(got, o.Callee)
	}
	assert.Equal(t, []string{"c", "b", "a"}, got)
	assert.Equal(t, 3, opens[0].Pos.Line)
	assert.Equal(t, 1, opens[2].Pos.Line)
}

func TestScanRegion_ContinuesAfterUnexpectedClose(t *testing.T) {
	res := scanLines(t, JavaScript, ")", "f(", ")", ")")
	closes := res.UnexpectedCloses()
	require.Len(t, closes, 2)
	assert.Equal(t, 1, closes[0].Pos.Line)
	assert.Equal(t, 4, closes[1].Pos.Line)
	assert.Empty(t, res.UnclosedOpens())
}

func TestScanRegion_CloseBeforeCommentedOpen(t *testing.T) {
	res := scanLines(t, JavaScript, "a) // (")
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, UnexpectedClose, res.Diagnostics[0].Kind)
	assert.Equal(t, 2, res.Diagnostics[0].Pos.Col)
}

func TestScanRegion_Counts(t *testing.T) {
	res := scanLines(t, JavaScript, "f(", "// x", "", "  // y", ")")
	assert.Equal(t, 2, res.Lines)
	assert.Equal(t, 2, res.CommentLines)
}

func TestScanRegion_SQL(t *testing.T) {
	res := scanLines(t, SQL,
		"select [weird)name], 'it''s (' -- (",
		"from dbo.f(1",
	)
	require.Len(t, res.Diagnostics, 1, repr.String(res.Diagnostics))
	assert.Equal(t, "dbo.f", res.Diagnostics[0].Callee)
	assert.Equal(t, 2, res.Diagnostics[0].Pos.Line)
	assert.Equal(t, 11, res.Diagnostics[0].Pos.Col)
}

func TestScan_RegionsAreIndependent(t *testing.T) {
	doc := ParseString("test.html", strings.Join([]string{
		"<script>",
		"f(",
		"</script>",
		"<p>)</p>",
		"<script>",
		")",
		"</script>",
	}, "\n"))
	regions := FindRegions(doc, DefaultMarkers(), true)
	require.Len(t, regions, 2)

	results := NewScanner(doc, JavaScript).Scan(regions)
	require.Len(t, results, 2)

	require.Len(t, results[0].Diagnostics, 1)
	assert.Equal(t, UnclosedOpen, results[0].Diagnostics[0].Kind)
	assert.Equal(t, 2, results[0].Diagnostics[0].Pos.Line)
	assert.Equal(t, 1, results[0].Diagnostics[0].Region)

	require.Len(t, results[1].Diagnostics, 1)
	assert.Equal(t, UnexpectedClose, results[1].Diagnostics[0].Kind)
	assert.Equal(t, 6, results[1].Diagnostics[0].Pos.Line)
	assert.Equal(t, 2, results[1].Diagnostics[0].Region)
}

func TestCallee(t *testing.T) {
	tests := []struct {
		prefix   string
		expected string
	}{
		{"foo", "foo"},
		{"x = console.log ", "console.log"},
		{"x = ", ""},
		{"if ", "if"},
		{"123", ""},
		{"", ""},
		{"a.b.", "a.b"},
		{"$el", "$el"},
		{"obj._priv", "obj._priv"},
		{"fn(", ""},
		{"x = größe", "größe"},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			assert.Equal(t, tt.expected, callee(tt.prefix))
		})
	}
}

func TestDiagnostic_Message(t *testing.T) {
	d := Diagnostic{Kind: UnexpectedClose, Pos: Pos{File: "a.html", Line: 3, Col: 9}}
	assert.Equal(t, "a.html:3:9 Unexpected closing parenthesis", d.Error())
	assert.Equal(t, Pos{Line: 3, Col: 9}, d.WithoutPos().Pos)

	d = Diagnostic{Kind: UnclosedOpen}
	assert.Equal(t, "Unclosed parenthesis", d.Message())

	text, err := UnclosedOpen.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "unclosed_open", string(text))
}
