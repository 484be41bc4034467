package merge

import "strings"

// Escape renders v as a SQL literal.
//
//	null            NULL
//	finite number   decimal text, unquoted
//	bool            TRUE / FALSE
//	anything else   textual form, single quotes doubled, wrapped in '...'
//
// Only single quotes are escaped: the result is always a value literal,
// never an identifier.
func Escape(v Value) string {
	switch {
	case v.kind == KindNull:
		return "NULL"
	case v.kind == KindBool:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	case v.finite():
		return formatNumber(v.n)
	}
	return Quote(v.Text())
}

// Quote wraps s in single quotes, doubling any single quote inside it.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
