// Package merge substitutes positional ? placeholders in SQL text with
// escaped literal values.
package merge

import (
	"strings"

	"github.com/leapstack-labs/sqlmerge/pkg/scan"
)

// Result is the outcome of a Merge.
type Result struct {
	SQL          string // merged text; unresolved placeholders stay as ?
	Err          error  // *CountError on mismatch, nil otherwise
	Used         int    // parameters consumed
	Placeholders int    // unquoted ? found
}

// OK reports whether every placeholder was resolved and every parameter used.
func (r Result) OK() bool {
	return r.Err == nil
}

// CountPlaceholders returns the number of ? characters outside quoted regions.
func CountPlaceholders(sql string) int {
	n := 0
	for _, seg := range scan.Segments(sql) {
		if !seg.Quoted() {
			n += strings.Count(seg.Text, "?")
		}
	}
	return n
}

// Merge replaces each unquoted ? in sql with the next parameter, escaped by
// Escape. Quoted regions are copied verbatim. When parameters run out the
// remaining placeholders are left in place.
//
// Merge never fails: count mismatches are reported in Result.Err alongside
// the best-effort text.
func Merge(sql string, params []Value) Result {
	var b strings.Builder
	b.Grow(len(sql))

	used, placeholders := 0, 0
	for _, seg := range scan.Segments(sql) {
		if seg.Quoted() {
			b.WriteString(seg.Text)
			continue
		}

		text := seg.Text
		for {
			i := strings.IndexByte(text, '?')
			if i < 0 {
				b.WriteString(text)
				break
			}
			b.WriteString(text[:i])
			placeholders++
			if used < len(params) {
				b.WriteString(Escape(params[used]))
				used++
			} else {
				b.WriteByte('?')
			}
			text = text[i+1:]
		}
	}

	res := Result{
		SQL:          b.String(),
		Used:         used,
		Placeholders: placeholders,
	}

	switch {
	case used < len(params):
		res.Err = &CountError{Err: ErrTooManyParameters, Placeholders: placeholders, Provided: len(params), Used: used}
	case used < placeholders:
		res.Err = &CountError{Err: ErrNotEnoughParameters, Placeholders: placeholders, Provided: len(params), Used: used}
	}
	return res
}
