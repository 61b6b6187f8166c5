package doctor

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// Reporter handles formatting and outputting doctor results.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, cfg Config) *Reporter {
	return &Reporter{w: w, useColors: shouldUseColors(cfg)}
}

// shouldUseColors determines if colors should be enabled.
func shouldUseColors(cfg Config) bool {
	// Explicit flag wins
	if cfg.UseColors {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs issues in golangci-lint format, sorted by file.
func (r *Reporter) PrintIssues(issues []Issue) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		return issues[i].Text < issues[j].Text
	})
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue as "file: message (tailship)".
func (r *Reporter) printIssue(issue Issue) {
	location := issue.Pos.Filename + ":"
	severityStyle := StyleYellow
	if issue.Severity == SeverityError {
		severityStyle = StyleRed
	}
	fmt.Fprintf(r.w, "%s %s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		RenderStyle(severityStyle, issue.Severity+":", r.useColors),
		issue.Text,
		RenderStyle(StyleGray, fmt.Sprintf(" (%s)", issue.FromLinter), r.useColors))
}

// PrintSummary outputs the issue counts and theme statistics.
func (r *Reporter) PrintSummary(result *Result) {
	fmt.Fprintln(r.w, "")
	if len(result.Issues) == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Tailwind setup looks complete", r.useColors))
	} else {
		fmt.Fprintf(r.w, "%s (%s, %s)\n",
			pluralizeCount(len(result.Issues), "issue", "issues"),
			pluralizeCount(result.ErrorCount, "error", "errors"),
			pluralizeCount(result.WarningCount, "warning", "warnings"))
	}
	fmt.Fprintf(r.w, "Liquid files: %d\n", result.LiquidFiles)
}

// WriteOutput writes the doctor result to w, as JSON when asJSON is set and
// in golangci-lint style otherwise.
func WriteOutput(w io.Writer, result *Result, cfg Config, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	reporter := NewReporter(w, cfg)
	reporter.PrintIssues(result.Issues)
	reporter.PrintSummary(result)
	return nil
}

// pluralizeCount returns a formatted string with count and singular/plural form.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
