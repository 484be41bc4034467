// Package keyword holds the fixed set of SQL keywords recognized by the
// formatter and the highlighter.
package keyword

import "strings"

// words maps lowercase keyword strings to membership.
// Populated once at init and never mutated afterwards.
var words = map[string]struct{}{}

// builtin is the keyword list, one word per entry. Multi-word clauses such as
// GROUP BY or UNION ALL are matched word by word.
var builtin = []string{
	// Query clauses
	"select", "from", "where", "group", "by", "order", "having", "limit",
	"offset", "union", "all", "intersect", "except", "distinct", "with",
	"as", "on", "using", "into", "values", "returning", "fetch",
	"over", "partition",

	// Joins
	"join", "inner", "left", "right", "full", "outer", "cross", "natural",

	// Logical and comparison
	"and", "or", "not", "in", "is", "null", "like", "ilike", "between",
	"exists", "any", "some", "true", "false",

	// Conditional
	"case", "when", "then", "else", "end",

	// Ordering
	"asc", "desc", "nulls",

	// DML / DDL
	"insert", "update", "set", "delete", "create", "alter", "drop",
	"table", "view", "truncate", "primary", "foreign", "references",
	"default", "unique", "constraint",

	// Expressions
	"cast", "interval", "count", "sum", "avg", "min", "max", "coalesce",
}

func init() {
	for _, w := range builtin {
		words[w] = struct{}{}
	}
}

// Is reports whether word is a keyword, ignoring case.
func Is(word string) bool {
	if word == "" {
		return false
	}
	_, ok := words[strings.ToLower(word)]
	return ok
}

// All returns the keyword list in upper case.
func All() []string {
	out := make([]string, len(builtin))
	for i, w := range builtin {
		out[i] = strings.ToUpper(w)
	}
	return out
}
