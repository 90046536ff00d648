package parencheck

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/vippsas/parencheck/scanner"
)

const (
	// DefaultMaxUnclosed bounds how many unclosed parentheses a report lists.
	DefaultMaxUnclosed = 10

	closeSnippetWidth = 100
	openSnippetWidth  = 80
)

// Range is a closed interval of line numbers. The zero value is unset.
type Range struct {
	Low  int
	High int
}

// ParseRange reads "4650-4660" or a single line "42". The empty string
// gives the unset range.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, nil
	}
	lo, hi, found := strings.Cut(s, "-")
	low, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return Range{}, errors.Errorf("invalid range %q: expected LOW-HIGH", s)
	}
	high := low
	if found {
		high, err = strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return Range{}, errors.Errorf("invalid range %q: expected LOW-HIGH", s)
		}
	}
	if low < 1 || high < low {
		return Range{}, errors.Errorf("invalid range %q: lines start at 1 and LOW must not exceed HIGH", s)
	}
	return Range{Low: low, High: high}, nil
}

// Set reports whether the range was given.
func (r Range) Set() bool {
	return r.Low > 0 && r.High >= r.Low
}

// Contains reports whether line lies in a set range.
func (r Range) Contains(line int) bool {
	return r.Set() && line >= r.Low && line <= r.High
}

func (r Range) String() string {
	if !r.Set() {
		return ""
	}
	return fmt.Sprintf("%d-%d", r.Low, r.High)
}

func (r Range) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Range) UnmarshalText(text []byte) error {
	parsed, err := ParseRange(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// WindowLine is one verbatim line of the range of interest.
type WindowLine struct {
	Line int    `json:"line" yaml:"line" toml:"line"`
	Text string `json:"text" yaml:"text" toml:"text"`
}

// ReportOptions controls what NewReport keeps.
type ReportOptions struct {
	RangeOfInterest Range
	// MaxUnclosed bounds Report.UnclosedOpens; 0 means DefaultMaxUnclosed
	// and a negative value lists all of them.
	MaxUnclosed int
}

// Report is the outcome of checking one document.
type Report struct {
	File             scanner.FileRef      `json:"file" yaml:"file" toml:"file"`
	Regions          []scanner.Region     `json:"regions" yaml:"regions" toml:"regions"`
	UnexpectedCloses []scanner.Diagnostic `json:"unexpectedCloses" yaml:"unexpectedCloses" toml:"unexpectedCloses"`
	// UnclosedOpens lists the most recently opened first, over all regions,
	// cut to the configured maximum.
	UnclosedOpens   []scanner.Diagnostic `json:"unclosedOpens" yaml:"unclosedOpens" toml:"unclosedOpens"`
	TotalUnclosed   int                  `json:"totalUnclosed" yaml:"totalUnclosed" toml:"totalUnclosed"`
	RangeOfInterest Range                `json:"rangeOfInterest" yaml:"rangeOfInterest" toml:"rangeOfInterest"`
	Window          []WindowLine         `json:"window,omitempty" yaml:"window,omitempty" toml:"window,omitempty"`
}

// NewReport aggregates the scan results of doc.
func NewReport(doc *scanner.Document, results []scanner.Result, opts ReportOptions) Report {
	limit := opts.MaxUnclosed
	if limit == 0 {
		limit = DefaultMaxUnclosed
	}

	report := Report{
		File:            doc.File,
		RangeOfInterest: opts.RangeOfInterest,
	}
	for _, res := range results {
		report.Regions = append(report.Regions, res.Region)
		report.UnexpectedCloses = append(report.UnexpectedCloses, res.UnexpectedCloses()...)
	}
	// later regions hold the more recent opens
	for i := len(results) - 1; i >= 0; i-- {
		opens := results[i].UnclosedOpens()
		report.TotalUnclosed += len(opens)
		for _, d := range opens {
			if limit > 0 && len(report.UnclosedOpens) == limit {
				break
			}
			report.UnclosedOpens = append(report.UnclosedOpens, d)
		}
	}

	if r := opts.RangeOfInterest; r.Set() {
		for n := r.Low; n <= r.High && n <= doc.Len(); n++ {
			report.Window = append(report.Window, WindowLine{Line: n, Text: doc.Line(n)})
		}
	}
	return report
}

// ErrorCount counts every finding, including unclosed parentheses left out
// of UnclosedOpens.
func (r Report) ErrorCount() int {
	return len(r.UnexpectedCloses) + r.TotalUnclosed
}

// Clean reports whether the document has no imbalance.
func (r Report) Clean() bool {
	return r.ErrorCount() == 0
}

// Notable reports whether d lies in the range of interest.
func (r Report) Notable(d scanner.Diagnostic) bool {
	return r.RangeOfInterest.Contains(d.Pos.Line)
}

// TextOptions controls WriteText.
type TextOptions struct {
	Color bool
}

// WriteText renders the report for humans.
func (r Report) WriteText(w io.Writer, opts TextOptions) error {
	highlight := color.New(color.FgYellow, color.Bold)
	if opts.Color {
		highlight.EnableColor()
	} else {
		highlight.DisableColor()
	}
	p := &printer{w: w}

	p.printf("=== SYNTAX CHECK RESULTS (%s) ===\n", r.File)

	if len(r.Regions) == 0 {
		p.printf("\nNo region found.\n")
	}
	for _, region := range r.Regions {
		if !region.Terminated {
			p.printf("\nWarning: %s\n", region)
		}
	}

	if !r.Clean() {
		p.printf("\nFound %s:\n", plural(r.ErrorCount(), "error", "errors"))
	}
	for i, d := range r.UnexpectedCloses {
		p.printf("\n")
		if r.Notable(d) {
			p.colored(highlight, ">>> %d. LINE %d:%d: %s (NEAR RANGE OF INTEREST)", i+1, d.Pos.Line, d.Pos.Col, d.Message())
			p.printf("\n")
		} else {
			p.printf("%d. Line %d:%d: %s\n", i+1, d.Pos.Line, d.Pos.Col, d.Message())
		}
		p.printf("  %s\n", snippet(d.Snippet, closeSnippetWidth))
	}

	if r.TotalUnclosed > 0 {
		p.printf("\n%s", plural(r.TotalUnclosed, "unclosed parenthesis", "unclosed parentheses"))
		if len(r.UnclosedOpens) < r.TotalUnclosed {
			p.printf(" (showing the %d most recent)", len(r.UnclosedOpens))
		}
		p.printf(":\n")
		for _, d := range r.UnclosedOpens {
			if r.Notable(d) {
				p.colored(highlight, ">>> LINE %d:%d: %s (NEAR RANGE OF INTEREST)", d.Pos.Line, d.Pos.Col, d.Message())
				p.printf("\n")
			} else {
				p.printf("Line %d:%d: %s\n", d.Pos.Line, d.Pos.Col, d.Message())
			}
			p.printf("  %s\n", snippet(d.Snippet, openSnippetWidth))
		}
	}

	if r.Clean() {
		p.printf("\nNo parenthesis errors found!\n")
	}

	if r.RangeOfInterest.Set() {
		p.printf("\n=== CHECKING LINES %s ===\n", r.RangeOfInterest)
		for _, line := range r.Window {
			p.printf("%d: %s\n", line.Line, strings.TrimRightFunc(line.Text, unicode.IsSpace))
		}
	}
	return p.err
}

// snippet keeps the first width display cells of s and marks a cut with "...".
func snippet(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "") + "..."
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}

// printer keeps the first write error so rendering code can ignore them.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) colored(c *color.Color, format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = c.Fprintf(p.w, format, args...)
}
