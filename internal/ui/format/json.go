package format

import (
	"bytes"
	"encoding/json"
	"io"
)

// FormatJSON marshals data to JSON with pretty-printing
func FormatJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ") // 2-space indentation
	return encoder.Encode(data)
}

// IndentJSON re-indents raw JSON bytes for display. Invalid JSON is
// returned as-is.
func IndentJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
