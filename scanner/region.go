package scanner

import (
	"errors"
	"fmt"
	"regexp"
)

// Markers of an inline script block.
const (
	DefaultStartMarker = "<script>"
	DefaultEndMarker   = "</script>"
)

// Markers delimit the active code inside a document.
type Markers struct {
	Start *regexp.Regexp
	End   *regexp.Regexp
}

// NewMarkers compiles the start and end marker. Unless isRegexp is set the
// markers are matched literally, anywhere on a line.
func NewMarkers(start, end string, isRegexp bool) (Markers, error) {
	if start == "" || end == "" {
		return Markers{}, errors.New("start and end marker must both be set")
	}
	if !isRegexp {
		start, end = regexp.QuoteMeta(start), regexp.QuoteMeta(end)
	}
	startRe, err := regexp.Compile(start)
	if err != nil {
		return Markers{}, fmt.Errorf("invalid start marker: %w", err)
	}
	endRe, err := regexp.Compile(end)
	if err != nil {
		return Markers{}, fmt.Errorf("invalid end marker: %w", err)
	}
	return Markers{Start: startRe, End: endRe}, nil
}

// DefaultMarkers matches the first <script> ... </script> block.
func DefaultMarkers() Markers {
	m, err := NewMarkers(DefaultStartMarker, DefaultEndMarker, false)
	if err != nil {
		panic(err)
	}
	return m
}

// Region is a contiguous span of active lines. Start and Stop are 1-indexed
// and inclusive; the region holds no lines when Stop < Start.
type Region struct {
	Index       int  `json:"index" yaml:"index" toml:"index"`
	StartMarker int  `json:"startMarker" yaml:"startMarker" toml:"startMarker"`
	Start       int  `json:"start" yaml:"start" toml:"start"`
	Stop        int  `json:"stop" yaml:"stop" toml:"stop"`
	EndMarker   int  `json:"endMarker,omitempty" yaml:"endMarker,omitempty" toml:"endMarker,omitempty"`
	Terminated  bool `json:"terminated" yaml:"terminated" toml:"terminated"`
}

// Len returns the number of lines in the region.
func (r Region) Len() int {
	if r.Stop < r.Start {
		return 0
	}
	return r.Stop - r.Start + 1
}

// Contains reports whether line lies inside the region.
func (r Region) Contains(line int) bool {
	return line >= r.Start && line <= r.Stop
}

func (r Region) String() string {
	if !r.Terminated {
		return fmt.Sprintf("region %d: lines %d-%d (no end marker)", r.Index, r.Start, r.Stop)
	}
	return fmt.Sprintf("region %d: lines %d-%d", r.Index, r.Start, r.Stop)
}

// FindRegions locates the active regions of doc.
//
// A region starts on the line after a line matching the start marker and
// stops on the line before the next line matching the end marker; without
// an end marker it runs to the end of the document. Only the first region
// is returned unless all is set, in which case the search resumes after each
// end marker. A document without a start marker has no regions.
func FindRegions(doc *Document, markers Markers, all bool) []Region {
	var result []Region
	line := 1
	for line <= doc.Len() {
		startMarker := findLine(doc, markers.Start, line)
		if startMarker == 0 {
			break
		}
		region := Region{
			Index:       len(result) + 1,
			StartMarker: startMarker,
			Start:       startMarker + 1,
		}
		endMarker := findLine(doc, markers.End, startMarker+1)
		if endMarker == 0 {
			region.Stop = doc.Len()
		} else {
			region.Stop = endMarker - 1
			region.EndMarker = endMarker
			region.Terminated = true
		}
		result = append(result, region)
		if !all || endMarker == 0 {
			break
		}
		line = endMarker + 1
	}
	return result
}

// findLine returns the first line number >= from matching re, or 0.
func findLine(doc *Document, re *regexp.Regexp, from int) int {
	for n := from; n <= doc.Len(); n++ {
		if re.MatchString(doc.Line(n)) {
			return n
		}
	}
	return 0
}
