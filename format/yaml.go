package format

import (
	"io"

	"github.com/vippsas/parencheck"
	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// YAMLExporter writes the summary as a YAML document.
type YAMLExporter struct{}

func (y YAMLExporter) Export(w io.Writer, summary parencheck.Summary) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(summary); err != nil {
		return err
	}
	return encoder.Close()
}
