package format

import (
	"io"

	"gopkg.in/yaml.v3"
)

// FormatYAML marshals data to YAML with 2-space indentation.
func FormatYAML(w io.Writer, data interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(data)
}
