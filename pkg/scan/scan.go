// Package scan tracks quoting state in SQL text.
//
// Every scanner in sqlmerge (placeholder counting, merging, formatting,
// minifying and highlighting) walks text through Advance so that they all
// agree on what lies inside a quoted region. Three quote kinds are
// recognized: single-quoted strings, double-quoted identifiers and back-tick
// identifiers. Inside a region the delimiter is escaped by doubling it.
// Quote kinds never nest: a delimiter of one kind is plain text inside a
// region of another kind.
//
// Comments are not recognized; "--" and "/* */" are ordinary text.
package scan

// Kind identifies the quoting of a region.
type Kind int

// Region kinds.
const (
	Unquoted Kind = iota
	Single        // 'string literal'
	Double        // "quoted identifier"
	Backtick      // `quoted identifier`
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case Single:
		return "single"
	case Double:
		return "double"
	case Backtick:
		return "backtick"
	default:
		return "unquoted"
	}
}

// Delimiter returns the quote character for the kind, or 0 for Unquoted.
func (k Kind) Delimiter() byte {
	switch k {
	case Single:
		return '\''
	case Double:
		return '"'
	case Backtick:
		return '`'
	default:
		return 0
	}
}

// State is the quoting state at a scan position. At most one field is true.
type State struct {
	InSingle   bool
	InDouble   bool
	InBacktick bool
}

// Quoted reports whether the state is inside any quoted region.
func (s State) Quoted() bool {
	return s.InSingle || s.InDouble || s.InBacktick
}

// Kind returns the kind of region the state is in.
func (s State) Kind() Kind {
	switch {
	case s.InSingle:
		return Single
	case s.InDouble:
		return Double
	case s.InBacktick:
		return Backtick
	default:
		return Unquoted
	}
}

// Advance applies the quoting rules to the byte at text[pos] given the state
// before it. It returns how many bytes were consumed (2 for a doubled-quote
// escape, otherwise 1) and the state after them.
//
// A delimiter only toggles its own kind, and only when no other kind is
// active. While inside a region, a delimiter followed by the same delimiter
// is an escape: both bytes are consumed and the region stays open.
func Advance(text string, pos int, s State) (int, State) {
	var next byte
	if pos+1 < len(text) {
		next = text[pos+1]
	}

	switch text[pos] {
	case '\'':
		if s.InDouble || s.InBacktick {
			return 1, s
		}
		if s.InSingle && next == '\'' {
			return 2, s
		}
		s.InSingle = !s.InSingle
	case '"':
		if s.InSingle || s.InBacktick {
			return 1, s
		}
		if s.InDouble && next == '"' {
			return 2, s
		}
		s.InDouble = !s.InDouble
	case '`':
		if s.InSingle || s.InDouble {
			return 1, s
		}
		if s.InBacktick && next == '`' {
			return 2, s
		}
		s.InBacktick = !s.InBacktick
	}
	return 1, s
}
