package highlight

import (
	"bytes"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

// Terminal writes sql to w with ANSI colors using the chroma SQL lexer.
// If highlighting fails the plain text is written instead. The returned
// error only reports a failed write to w.
func Terminal(w io.Writer, sql, style string) error {
	if style == "" {
		style = DefaultStyle
	}

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, sql, "sql", "terminal256", style); err != nil {
		_, err = io.WriteString(w, sql)
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
