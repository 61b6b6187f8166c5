package tailship

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Version selects the Tailwind CSS major release to install.
type Version string

// Supported Tailwind releases. v3 uses the classic tailwindcss CLI with a
// tailwind.config.js; v4 uses @tailwindcss/cli and is configured from CSS.
const (
	VersionV3 Version = "v3"
	VersionV4 Version = "v4"
)

// Config holds installer configuration.
type Config struct {
	Dir         string  // theme root directory
	CSSVersion  Version // VersionV3 or VersionV4
	SkipInstall bool    // write all files but do not run `npm install`

	// Runner executes npm. Nil selects the exec-backed runner; tests
	// substitute a fake.
	Runner CommandRunner
}

// Validate validates the installer configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
		validation.Field(&c.CSSVersion, validation.Required, validation.In(VersionV3, VersionV4)),
	)
}

// PatchResult describes the outcome of a template patch.
type PatchResult string

// Patch outcomes. PatchFileMissing is advisory, not an error: the install
// continues and records a warning.
const (
	PatchInserted       PatchResult = "inserted"
	PatchAlreadyPresent PatchResult = "already-present"
	PatchFileMissing    PatchResult = "file-missing"
)

// ReconcileResult describes the outcome of an ignore-file reconciliation.
type ReconcileResult string

// Reconcile outcomes.
const (
	ReconcileCreated   ReconcileResult = "created"
	ReconcileUpdated   ReconcileResult = "updated"
	ReconcileUnchanged ReconcileResult = "unchanged"
)

// StepStatus describes the outcome of a single install step.
type StepStatus string

// Step outcomes as reported in InstallResult.
const (
	StatusCreated   StepStatus = "created"
	StatusUpdated   StepStatus = "updated"
	StatusUnchanged StepStatus = "unchanged"
	StatusSkipped   StepStatus = "skipped"
)

// Step records one install step for reporting.
type Step struct {
	Name   string
	Status StepStatus
}

// InstallResult contains the per-step outcomes of a completed install.
type InstallResult struct {
	Version  Version
	Steps    []Step
	Warnings []string
}

func (r *InstallResult) addStep(name string, status StepStatus) {
	r.Steps = append(r.Steps, Step{Name: name, Status: status})
}

func (r *InstallResult) addWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
