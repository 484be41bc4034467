// Package highlight renders SQL for display, either as HTML markup or as
// ANSI-colored terminal text.
package highlight

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/sqlmerge/pkg/keyword"
	"github.com/leapstack-labs/sqlmerge/pkg/scan"
)

// CSS classes used by HTML.
const (
	ClassString   = "sql-string"
	ClassIdent    = "sql-ident"
	ClassBacktick = "sql-backtick"
	ClassNumber   = "sql-number"
	ClassKeyword  = "sql-keyword"
)

// HTML returns sql as HTML-escaped text with span markup. Quoted regions
// are wrapped whole, escape pairs included, in a span named after the quote
// kind. Outside quotes, numeric runs and keywords get their own spans;
// keywords are upper-cased. Everything else is escaped and passed through.
func HTML(sql string) string {
	var b strings.Builder
	b.Grow(len(sql) + len(sql)/2)

	for _, seg := range scan.Segments(sql) {
		if seg.Quoted() {
			span(&b, quoteClass(seg.Kind), seg.Text)
			continue
		}
		unquoted(&b, seg.Text)
	}
	return b.String()
}

func unquoted(b *strings.Builder, text string) {
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		switch {
		case isDigit(r):
			n := numberLen(text)
			span(b, ClassNumber, text[:n])
			text = text[n:]
		case isWordRune(r):
			n := wordLen(text)
			word := text[:n]
			if keyword.Is(word) {
				span(b, ClassKeyword, strings.ToUpper(word))
			} else {
				b.WriteString(html.EscapeString(word))
			}
			text = text[n:]
		default:
			b.WriteString(html.EscapeString(text[:size]))
			text = text[size:]
		}
	}
}

func span(b *strings.Builder, class, text string) {
	b.WriteString(`<span class="`)
	b.WriteString(class)
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(text))
	b.WriteString("</span>")
}

func quoteClass(k scan.Kind) string {
	switch k {
	case scan.Double:
		return ClassIdent
	case scan.Backtick:
		return ClassBacktick
	default:
		return ClassString
	}
}

// numberLen returns the length of the digit and decimal point run at the
// start of s.
func numberLen(s string) int {
	n := 0
	for n < len(s) && (s[n] == '.' || (s[n] >= '0' && s[n] <= '9')) {
		n++
	}
	return n
}

func wordLen(s string) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !isWordRune(r) {
			break
		}
		n += size
	}
	return n
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
