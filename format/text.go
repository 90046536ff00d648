package format

import (
	"io"

	"github.com/vippsas/parencheck"
)

// TextExporter writes the human readable report of every file, separated
// by a blank line.
type TextExporter struct {
	Color bool
}

func (t TextExporter) Export(w io.Writer, summary parencheck.Summary) error {
	for i, report := range summary.Reports {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := report.WriteText(w, parencheck.TextOptions{Color: t.Color}); err != nil {
			return err
		}
	}
	return nil
}
