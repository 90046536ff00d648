package format

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/vippsas/parencheck"
)

// TOMLExporter writes the summary as a TOML document, one [[reports]]
// table per file.
type TOMLExporter struct{}

func (t TOMLExporter) Export(w io.Writer, summary parencheck.Summary) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = ""

	return encoder.Encode(summary)
}
