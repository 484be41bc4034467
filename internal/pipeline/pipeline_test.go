package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlmerge/pkg/format"
	"github.com/leapstack-labs/sqlmerge/pkg/merge"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	sql := "select * from t where id = ? and name = ?"
	values := merge.Values(7, "O'Reilly")

	tests := []struct {
		name     string
		opts     Options
		expected string
	}{
		{
			name:     "merge only",
			expected: "select * from t where id = 7 and name = 'O''Reilly'",
		},
		{
			name:     "beautify",
			opts:     Options{Beautify: true},
			expected: "SELECT *\nFROM t\nWHERE id = 7\n  AND name = 'O''Reilly'",
		},
		{
			name:     "minify wins",
			opts:     Options{Beautify: true, Minify: true},
			expected: "select * from t where id = 7 and name = 'O''Reilly'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Run(ctx, sql, values, tt.opts, nil)
			assert.Equal(t, tt.expected, out.SQL)
			assert.True(t, out.OK())
			assert.Empty(t, out.Error)
			assert.Equal(t, 2, out.Placeholders)
			assert.Equal(t, 2, out.Provided)
			assert.Equal(t, 2, out.Used)
			assert.False(t, out.External)
		})
	}
}

func TestRun_Mismatch(t *testing.T) {
	out := Run(context.Background(), "WHERE a IN (?, ?)", merge.Values(1), Options{}, nil)

	assert.Equal(t, "WHERE a IN (1, ?)", out.SQL)
	require.Error(t, out.Err)
	assert.True(t, errors.Is(out.Err, merge.ErrNotEnoughParameters))
	assert.Equal(t, out.Err.Error(), out.Error)
	assert.Equal(t, 1, out.Used)
	assert.Equal(t, 2, out.Placeholders)
	assert.Equal(t, 1, out.Provided)
}

func TestRun_ExternalBeautifier(t *testing.T) {
	b := &format.Beautifier{
		External: format.ExternalFunc(func(_ context.Context, sql string, _ format.Options) (string, error) {
			return "-- formatted\n" + sql, nil
		}),
	}

	out := Run(context.Background(), "SELECT ?", merge.Values(true), Options{Beautify: true}, b)
	assert.Equal(t, "-- formatted\nSELECT TRUE", out.SQL)
	assert.True(t, out.External)
}
