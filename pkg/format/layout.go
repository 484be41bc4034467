package format

import (
	"regexp"
	"strings"
)

// Rule is one rewrite step of the layout pass.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp

	// Replace is the regexp replacement template. ReplaceFunc, when set,
	// takes precedence.
	Replace     string
	ReplaceFunc func(match string) string
}

// Apply rewrites s with the rule.
func (r Rule) Apply(s string) string {
	if r.ReplaceFunc != nil {
		return r.Pattern.ReplaceAllStringFunc(s, r.ReplaceFunc)
	}
	return r.Pattern.ReplaceAllString(s, r.Replace)
}

// ClauseBreaks lists the phrases that start a new line. Order matters: when
// several phrases match at the same position the earlier one wins, so a
// longer phrase must precede any phrase it contains.
var ClauseBreaks = []string{
	"UNION ALL",
	"UNION",
	"INTERSECT",
	"EXCEPT",
	"LEFT OUTER JOIN",
	"RIGHT OUTER JOIN",
	"FULL OUTER JOIN",
	"LEFT JOIN",
	"RIGHT JOIN",
	"FULL JOIN",
	"INNER JOIN",
	"CROSS JOIN",
	"NATURAL JOIN",
	"JOIN",
	"FROM",
	"WHERE",
	"GROUP BY",
	"ORDER BY",
	"HAVING",
	"LIMIT",
	"OFFSET",
	"VALUES",
	"SET",
	"RETURNING",
}

// LogicalBreaks lists the operators placed on an indented line of their own.
var LogicalBreaks = []string{"AND", "OR"}

// layoutRules is built once; the regexps are safe for concurrent use.
var layoutRules = buildRules()

// Rules returns the layout rules in application order.
func Rules() []Rule {
	out := make([]Rule, len(layoutRules))
	copy(out, layoutRules)
	return out
}

func buildRules() []Rule {
	return []Rule{
		{
			Name:    "line-endings",
			Pattern: regexp.MustCompile(`\r\n?`),
			Replace: "\n",
		},
		{
			Name:    "horizontal-space",
			Pattern: regexp.MustCompile(`[ \t\f\v]+`),
			Replace: " ",
		},
		{
			Name:    "line-edges",
			Pattern: regexp.MustCompile(` ?\n ?`),
			Replace: "\n",
		},
		{
			// One alternation so a shorter phrase never re-matches inside a
			// longer one that was already broken.
			Name:        "clause-breaks",
			Pattern:     regexp.MustCompile(`\s*\b(?:` + alternation(ClauseBreaks) + `)\b`),
			ReplaceFunc: breakBefore,
		},
		{
			Name:    "logical-breaks",
			Pattern: regexp.MustCompile(`\s*\b(` + alternation(LogicalBreaks) + `)\b[ \t]*`),
			Replace: "\n  ${1} ",
		},
		{
			Name:    "trailing-space",
			Pattern: regexp.MustCompile(` +\n`),
			Replace: "\n",
		},
		{
			Name:    "blank-lines",
			Pattern: regexp.MustCompile(`\n{3,}`),
			Replace: "\n\n",
		},
	}
}

// alternation builds a regexp alternation of phrases, allowing any
// whitespace between the words of a phrase.
func alternation(phrases []string) string {
	parts := make([]string, len(phrases))
	for i, p := range phrases {
		words := strings.Fields(p)
		for j, w := range words {
			words[j] = regexp.QuoteMeta(w)
		}
		parts[i] = strings.Join(words, `\s+`)
	}
	return strings.Join(parts, "|")
}

// breakBefore replaces a matched phrase, and the whitespace before it, with a
// newline followed by the phrase in canonical single-spaced form.
func breakBefore(match string) string {
	return "\n" + strings.Join(strings.Fields(match), " ")
}

// Layout applies the layout rules to keyword-cased text and trims the result.
//
// Layout is not quote-aware. It relies on keywords outside quotes having
// been upper-cased, and matches only upper-case phrases. Upper-case clause
// text typed inside a string literal is therefore broken as well.
func Layout(sql string) string {
	for _, r := range layoutRules {
		sql = r.Apply(sql)
	}
	return strings.TrimSpace(sql)
}
