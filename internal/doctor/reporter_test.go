package doctor

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_PrintIssues(t *testing.T) {
	var out strings.Builder
	reporter := &Reporter{w: &out}

	reporter.PrintIssues([]Issue{
		{FromLinter: "tailship", Text: "stylesheet tag missing", Severity: SeverityError,
			Pos: Pos{Filename: "layout/theme.liquid"}},
		{FromLinter: "tailship", Text: ".gitignore missing", Severity: SeverityWarning,
			Pos: Pos{Filename: ".gitignore"}},
	})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	// Sorted by file: .gitignore before layout/theme.liquid
	assert.Equal(t, ".gitignore: warning: .gitignore missing (tailship)", lines[0])
	assert.Equal(t, "layout/theme.liquid: error: stylesheet tag missing (tailship)", lines[1])
}

func TestReporter_PrintSummary(t *testing.T) {
	t.Run("clean result", func(t *testing.T) {
		var out strings.Builder
		reporter := &Reporter{w: &out}
		reporter.PrintSummary(&Result{LiquidFiles: 12})

		assert.Contains(t, out.String(), "Tailwind setup looks complete")
		assert.Contains(t, out.String(), "Liquid files: 12")
	})

	t.Run("counts and plurals", func(t *testing.T) {
		var out strings.Builder
		reporter := &Reporter{w: &out}
		reporter.PrintSummary(&Result{
			Issues:       make([]Issue, 3),
			ErrorCount:   1,
			WarningCount: 2,
		})

		assert.Contains(t, out.String(), "3 issues (1 error, 2 warnings)")
	})
}

func TestWriteOutput_JSON(t *testing.T) {
	var out strings.Builder
	result := &Result{
		Issues: []Issue{{FromLinter: "tailship", Text: "x", Severity: SeverityError,
			Pos: Pos{Filename: "package.json"}}},
		ErrorCount:  1,
		LiquidFiles: 4,
	}

	require.NoError(t, WriteOutput(&out, result, Config{}, true))

	var decoded Result
	require.NoError(t, json.Unmarshal([]byte(out.String()), &decoded))
	assert.Equal(t, 1, decoded.ErrorCount)
	assert.Equal(t, 4, decoded.LiquidFiles)
	require.Len(t, decoded.Issues, 1)
	assert.Equal(t, "package.json", decoded.Issues[0].Pos.Filename)
}
