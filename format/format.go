// Package format writes check summaries in the formats the command line
// tool offers.
package format

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vippsas/parencheck"
)

// Exporter writes a summary of a check run to w.
type Exporter interface {
	Export(w io.Writer, summary parencheck.Summary) error
}

// Lookup returns the exporter named name. Color only affects the text format.
func Lookup(name string, color bool) (Exporter, error) {
	switch strings.ToLower(name) {
	case "text", "":
		return TextExporter{Color: color}, nil
	case "json":
		return JSONExporter{}, nil
	case "yaml", "yml":
		return YAMLExporter{}, nil
	case "toml":
		return TOMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q, expected one of %s", name, strings.Join(Names(), ", "))
	}
}

// Names lists the accepted format names.
func Names() []string {
	names := []string{"text", "json", "yaml", "toml"}
	sort.Strings(names)
	return names
}
