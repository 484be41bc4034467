package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlmerge/pkg/merge"
)

func TestDecodeArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []merge.Value
	}{
		{
			name:     "scalars",
			input:    `["784", 1, 2.5, true, null]`,
			expected: []merge.Value{merge.String("784"), merge.Number(1), merge.Number(2.5), merge.Bool(true), merge.Null()},
		},
		{
			name:     "empty array",
			input:    `[]`,
			expected: []merge.Value{},
		},
		{
			name:     "blank text",
			input:    "  \n",
			expected: []merge.Value{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeArray(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecodeArray_Nested(t *testing.T) {
	got, err := DecodeArray(`[[1, 2], {"a": "b"}]`)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, merge.KindOther, got[0].Kind())
	assert.Equal(t, "'[1,2]'", merge.Escape(got[0]))
	assert.Equal(t, merge.KindOther, got[1].Kind())
	assert.Equal(t, `'{"a":"b"}'`, merge.Escape(got[1]))
}

func TestDecodeArray_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"not json", `[1, 2`, "invalid parameters"},
		{"object", `{"a": 1}`, "expected a JSON array, got object"},
		{"string", `"abc"`, "expected a JSON array, got string"},
		{"number", `42`, "expected a JSON array, got number"},
		{"null", `null`, "expected a JSON array, got null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeArray(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidParameters)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Nil(t, got)
		})
	}
}

func TestDecodeLoad(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		p, err := DecodeLoad([]byte(`{"sql": "SELECT ?", "values": ["a", 1], "name": "ignored"}`), KindJSON)
		require.NoError(t, err)
		assert.Equal(t, "SELECT ?", p.SQL)
		assert.Equal(t, []merge.Value{merge.String("a"), merge.Number(1)}, p.Values)
	})

	t.Run("yaml", func(t *testing.T) {
		data := []byte("sql: |\n  SELECT * FROM t WHERE id = ?\nvalues:\n  - 7\n  - \"x\"\n  - null\n")
		p, err := DecodeLoad(data, KindYAML)
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM t WHERE id = ?\n", p.SQL)
		assert.Equal(t, []merge.Value{merge.Number(7), merge.String("x"), merge.Null()}, p.Values)
	})

	t.Run("empty values", func(t *testing.T) {
		p, err := DecodeLoad([]byte(`{"sql": "SELECT 1", "values": []}`), KindJSON)
		require.NoError(t, err)
		assert.Empty(t, p.Values)
	})
}

func TestDecodeLoad_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
	}{
		{"missing sql", `{"values": []}`, KindJSON},
		{"missing values", `{"sql": "SELECT 1"}`, KindJSON},
		{"sql not a string", `{"sql": 1, "values": []}`, KindJSON},
		{"values not an array", `{"sql": "SELECT 1", "values": "a"}`, KindJSON},
		{"values null", `{"sql": "SELECT 1", "values": null}`, KindJSON},
		{"array", `[1, 2]`, KindJSON},
		{"null", `null`, KindJSON},
		{"invalid json", `{"sql":`, KindJSON},
		{"yaml missing values", "sql: SELECT 1\n", KindYAML},
		{"yaml scalar", "just text\n", KindYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeLoad([]byte(tt.input), tt.kind)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}

func TestKindFromPath(t *testing.T) {
	assert.Equal(t, KindYAML, KindFromPath("payload.yaml"))
	assert.Equal(t, KindYAML, KindFromPath("dir/PAYLOAD.YML"))
	assert.Equal(t, KindJSON, KindFromPath("payload.json"))
	assert.Equal(t, KindJSON, KindFromPath("payload"))
	assert.Equal(t, "yaml", KindYAML.String())
	assert.Equal(t, "json", KindJSON.String())
}
