package doctor

// Issue represents a single doctor finding, formatted golangci-lint style.
type Issue struct {
	FromLinter string `json:"FromLinter"` // always "tailship"
	Text       string `json:"Text"`       // "stylesheet tag missing from layout/theme.liquid"
	Severity   string `json:"Severity"`   // "error" or "warning"
	Pos        Pos    `json:"Pos"`
}

// Pos locates an issue. Doctor checks are file-granular, so Line is only set
// when a specific line is known.
type Pos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line,omitempty"`
}

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)
