package format

import (
	"bytes"

	"github.com/alecthomas/chroma/v2/quick"
)

// Highlight applies terminal syntax highlighting to content.
// lexer is a chroma lexer name such as "json" or "yaml".
// On any highlighting error the content is returned unchanged.
func Highlight(content, lexer string) string {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, content, lexer, "terminal256", "monokai"); err != nil {
		return content
	}
	return buf.String()
}
