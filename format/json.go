package format

import (
	"encoding/json"
	"io"

	"github.com/vippsas/parencheck"
)

// JSONExporter writes the summary as one indented JSON document.
type JSONExporter struct{}

func (j JSONExporter) Export(w io.Writer, summary parencheck.Summary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(summary)
}
