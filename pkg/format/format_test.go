package format

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/leapstack-labs/sqlmerge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "where with and",
			input: "select * from t where a = 1 and b = 'x and y'",
			expected: `SELECT *
FROM t
WHERE a = 1
  AND b = 'x and y'`,
		},
		{
			name:  "or",
			input: "select * from t where a = 1 or b = 2",
			expected: `SELECT *
FROM t
WHERE a = 1
  OR b = 2`,
		},
		{
			name:  "joins longest phrase first",
			input: "select a.id, b.name from a left outer join b on a.id = b.id inner join c on c.id = a.id",
			expected: `SELECT a.id, b.name
FROM a
LEFT OUTER JOIN b ON a.id = b.id
INNER JOIN c ON c.id = a.id`,
		},
		{
			name:  "union all before union",
			input: "select 1 union all select 2 union select 3",
			expected: `SELECT 1
UNION ALL SELECT 2
UNION SELECT 3`,
		},
		{
			name:  "grouping and paging",
			input: "select a, count(*) from t group by a having count(*) > 1 order by a desc limit 10 offset 5",
			expected: `SELECT a, COUNT(*)
FROM t
GROUP BY a
HAVING COUNT(*) > 1
ORDER BY a DESC
LIMIT 10
OFFSET 5`,
		},
		{
			name:     "horizontal whitespace collapsed and trimmed",
			input:    "  SELECT\ta,\t\tb   FROM t  ",
			expected: "SELECT a, b\nFROM t",
		},
		{
			name:     "existing newlines kept",
			input:    "SELECT a,\n  b\nFROM t",
			expected: "SELECT a,\nb\nFROM t",
		},
		{
			name:     "blank lines collapsed",
			input:    "SELECT a\n\n\n\nSELECT b",
			expected: "SELECT a\n\nSELECT b",
		},
		{
			name:     "crlf normalized",
			input:    "SELECT a\r\nFROM t",
			expected: "SELECT a\nFROM t",
		},
		{
			name:     "quoted keywords untouched",
			input:    `select "from", 'where', ` + "`join`" + ` from t`,
			expected: `SELECT "from", 'where', ` + "`join`" + "\nFROM t",
		},
		{
			name:     "snake case identifiers untouched",
			input:    "select order_id, from_date from orders",
			expected: "SELECT order_id, from_date\nFROM orders",
		},
		{
			name:     "phrase split across lines",
			input:    "select a from t order\nby a",
			expected: "SELECT a\nFROM t\nORDER BY a",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.input))
		})
	}
}

// Upper-case clause text inside a string literal is broken too: the layout
// pass is not quote-aware.
func TestFormat_UppercaseKeywordInsideStringIsBroken(t *testing.T) {
	got := Format("select 'a FROM b' from t")
	assert.Equal(t, "SELECT 'a\nFROM b'\nFROM t", got)
}

func TestUpperKeywords(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"select a from t", "SELECT a FROM t"},
		{"Select A From T", "SELECT A FROM T"},
		{"select 'select' from \"from\"", "SELECT 'select' FROM \"from\""},
		{"select 'it''s from' from t", "SELECT 'it''s from' FROM t"},
		{"select naïve from t", "SELECT naïve FROM t"},
		{"select x1, _in from t", "SELECT x1, _in FROM t"},
		{"select 'unterminated from", "SELECT 'unterminated from"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, UpperKeywords(tt.input))
		})
	}
}

func TestRules_Order(t *testing.T) {
	var names []string
	for _, r := range Rules() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"line-endings",
		"horizontal-space",
		"line-edges",
		"clause-breaks",
		"logical-breaks",
		"trailing-space",
		"blank-lines",
	}, names)
}

func TestClauseBreaks_LongestFirst(t *testing.T) {
	for i, longer := range ClauseBreaks {
		for j, shorter := range ClauseBreaks {
			if i == j {
				continue
			}
			if strings.Contains(" "+longer+" ", " "+shorter+" ") {
				assert.Less(t, i, j, "%q must come before %q", longer, shorter)
			}
		}
	}
}

func TestMinify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "space before comma dropped",
			input:    "SELECT  a ,  b  FROM t",
			expected: "SELECT a, b FROM t",
		},
		{
			name:     "parentheses",
			input:    "SELECT  count( * )  FROM t WHERE a IN ( 1 , 2 )",
			expected: "SELECT count(*) FROM t WHERE a IN (1, 2)",
		},
		{
			name:     "quoted content verbatim",
			input:    "SELECT  'a   b' ,\n\"c  d\"",
			expected: "SELECT 'a   b', \"c  d\"",
		},
		{
			name:     "escape pairs verbatim",
			input:    "SELECT 'it''s  here'   AS  x",
			expected: "SELECT 'it''s  here' AS x",
		},
		{
			name:     "newlines and tabs",
			input:    "\n\t SELECT 1\n\tFROM\n\n t \n",
			expected: "SELECT 1 FROM t",
		},
		{
			name:     "empty",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Minify(tt.input))
		})
	}
}

func TestMinify_Idempotent(t *testing.T) {
	inputs := []string{
		"SELECT  a ,  b  FROM t",
		"SELECT *\nFROM t\nWHERE a = 1\n  AND b = 'x  y'",
		"INSERT INTO t (a, b) VALUES ( ?, ? )",
		"SELECT `a  b`, \"c\"\"d\" FROM t",
	}

	for _, in := range inputs {
		once := Minify(in)
		assert.Equal(t, once, Minify(once), "input %q", in)
	}
}

func TestBeautifier(t *testing.T) {
	const sql = "select a from t"
	local := Format(sql)

	t.Run("no external", func(t *testing.T) {
		b := &Beautifier{}
		out, external := b.Format(context.Background(), sql)
		assert.Equal(t, local, out)
		assert.False(t, external)
	})

	t.Run("nil beautifier", func(t *testing.T) {
		var b *Beautifier
		out, external := b.Format(context.Background(), sql)
		assert.Equal(t, local, out)
		assert.False(t, external)
	})

	t.Run("external succeeds", func(t *testing.T) {
		var gotOpts Options
		b := &Beautifier{
			External: ExternalFunc(func(_ context.Context, s string, opts Options) (string, error) {
				gotOpts = opts
				return strings.ToUpper(s) + "\n", nil
			}),
			Options: DefaultOptions(),
			Logger:  testutil.NewTestLogger(t),
		}
		out, external := b.Format(context.Background(), sql)
		assert.Equal(t, "SELECT A FROM T", out)
		assert.True(t, external)
		assert.Equal(t, DefaultOptions(), gotOpts)
	})

	t.Run("external fails", func(t *testing.T) {
		b := &Beautifier{
			External: ExternalFunc(func(context.Context, string, Options) (string, error) {
				return "", errors.New("boom")
			}),
			Logger: testutil.NewTestLogger(t),
		}
		out, external := b.Format(context.Background(), sql)
		assert.Equal(t, local, out)
		assert.False(t, external)
	})

	t.Run("external returns nothing", func(t *testing.T) {
		b := &Beautifier{
			External: ExternalFunc(func(context.Context, string, Options) (string, error) {
				return "  \n", nil
			}),
		}
		out, external := b.Format(context.Background(), sql)
		assert.Equal(t, local, out)
		assert.False(t, external)
	})

	t.Run("external times out", func(t *testing.T) {
		b := &Beautifier{
			External: ExternalFunc(func(ctx context.Context, _ string, _ Options) (string, error) {
				<-ctx.Done()
				return "", ctx.Err()
			}),
			Timeout: 10 * time.Millisecond,
			Logger:  testutil.NewTestLogger(t),
		}
		start := time.Now()
		out, external := b.Format(context.Background(), sql)
		require.Less(t, time.Since(start), 2*time.Second)
		assert.Equal(t, local, out)
		assert.False(t, external)
	})
}
