// Package format provides cosmetic SQL formatting: keyword casing, clause
// line-breaking and minification. Formatting never parses SQL; it only
// distinguishes quoted regions from everything else.
package format

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/sqlmerge/pkg/keyword"
	"github.com/leapstack-labs/sqlmerge/pkg/scan"
)

// Format beautifies sql: keywords outside quoted regions are upper-cased,
// whitespace is normalized and major clauses start on their own line.
func Format(sql string) string {
	return Layout(UpperKeywords(sql))
}

// UpperKeywords upper-cases every word outside quoted regions that is a
// keyword. A word is a maximal run of letters, digits and underscores, so
// identifiers such as order_id are left alone. All other text, including
// quoted regions, is copied unchanged.
func UpperKeywords(sql string) string {
	var b strings.Builder
	b.Grow(len(sql))

	for _, seg := range scan.Segments(sql) {
		if seg.Quoted() {
			b.WriteString(seg.Text)
			continue
		}

		text := seg.Text
		for len(text) > 0 {
			n := wordLen(text)
			if n == 0 {
				_, size := utf8.DecodeRuneInString(text)
				b.WriteString(text[:size])
				text = text[size:]
				continue
			}
			word := text[:n]
			if keyword.Is(word) {
				word = strings.ToUpper(word)
			}
			b.WriteString(word)
			text = text[n:]
		}
	}
	return b.String()
}

// wordLen returns the byte length of the word at the start of s.
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

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
