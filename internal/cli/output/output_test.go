package output_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlmerge/internal/cli/output"
	"github.com/leapstack-labs/sqlmerge/internal/cli/testutil"
)

func TestMode(t *testing.T) {
	tests := []struct {
		input    string
		expected output.OutputMode
	}{
		{"", output.ModeAuto},
		{"auto", output.ModeAuto},
		{"text", output.ModeText},
		{"TEXT", output.ModeText},
		{"markdown", output.ModeMarkdown},
		{"md", output.ModeMarkdown},
		{"json", output.ModeJSON},
		{"xml", output.ModeAuto},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, output.Mode(tt.input))
		})
	}
}

func TestRenderer_EffectiveMode(t *testing.T) {
	assert.Equal(t, output.ModeText, testutil.NewTestRenderer(output.ModeAuto, true).EffectiveMode())
	assert.Equal(t, output.ModeMarkdown, testutil.NewTestRendererAuto().EffectiveMode())
	assert.Equal(t, output.ModeJSON, testutil.NewTestRenderer(output.ModeJSON, true).EffectiveMode())
	assert.Equal(t, output.ModeText, testutil.NewTestRenderer(output.ModeText, false).EffectiveMode())
}

func TestRenderer_Markdown(t *testing.T) {
	tr := testutil.NewTestRendererMarkdown()

	tr.Header(2, "Merge")
	tr.Success("done")
	tr.Muted("quiet")
	tr.Println(output.FormatKeyValue("Placeholders", "2"))
	tr.Println(output.FormatCodeBlock("sql", "SELECT 1\n"))
	tr.Warning("careful")
	tr.Error("broken")

	out := tr.Output()
	assert.Contains(t, out, "## Merge\n")
	assert.Contains(t, out, "done\n")
	assert.Contains(t, out, "- **Placeholders**: 2\n")
	assert.Contains(t, out, "```sql\nSELECT 1\n```\n")
	assert.Equal(t, "Warning: careful\nError: broken\n", tr.ErrorOutput())
	testutil.AssertOutputMode(t, tr, output.ModeMarkdown)
}

func TestRenderer_Text(t *testing.T) {
	tr := testutil.NewTestRendererText()

	tr.Header(1, "Merge")
	tr.Success("done")
	tr.Error("broken")

	testutil.AssertContains(t, tr.Output(), "Merge")
	testutil.AssertContains(t, tr.Output(), "✓ done")
	testutil.AssertContains(t, tr.ErrorOutput(), "✗ broken")
	testutil.AssertNotContains(t, tr.Output(), "#")
}

func TestRenderer_JSON(t *testing.T) {
	tr := testutil.NewTestRendererJSON()

	require.NoError(t, tr.JSON(map[string]any{"sql": "SELECT 1", "ok": true}))
	assert.JSONEq(t, `{"sql": "SELECT 1", "ok": true}`, tr.Output())
	testutil.AssertOutputMode(t, tr, output.ModeJSON)
}

func TestRenderer_Table(t *testing.T) {
	header := []string{"#", "Kind", "Text"}
	rows := [][]string{{"1", "unquoted", "SELECT "}, {"2", "single", "'a'"}}

	t.Run("markdown", func(t *testing.T) {
		tr := testutil.NewTestRendererMarkdown()
		tr.Table(header, rows)
		assert.Contains(t, strings.ToLower(tr.Output()), "| kind |")
		assert.Contains(t, tr.Output(), "| 2 | single | 'a' |")
	})

	t.Run("text", func(t *testing.T) {
		tr := testutil.NewTestRendererText()
		tr.Table(header, rows)
		assert.Contains(t, tr.Output(), "┌")
		assert.Contains(t, tr.Output(), "KIND")
		assert.Contains(t, tr.Output(), "unquoted")
	})
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", output.FormatHeader(0, "Title"))
	assert.Equal(t, "### Title", output.FormatHeader(3, "Title"))
	assert.Equal(t, "```\nx\n```", output.FormatCodeBlock("", "x"))
	assert.Equal(t, "- **a**: b", output.FormatKeyValue("a", "b"))
}
