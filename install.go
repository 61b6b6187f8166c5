package tailship

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrNotThemeDirectory is returned when the target directory has no
// layout/theme.liquid and therefore is not a Shopify theme.
var ErrNotThemeDirectory = errors.New("not a Shopify theme directory (layout/theme.liquid not found)")

// Install runs the full installation against cfg.Dir: validate the theme,
// ensure package.json and its tailwind script, write the config and CSS
// entry files, patch the theme layout, reconcile the ignore files, and
// install the npm dependencies. Steps run strictly top to bottom and any
// fatal error aborts before later files are touched; because every step is
// idempotent the install can simply be re-run after a failure.
func Install(cfg Config) (*InstallResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	runner := cfg.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	if _, err := runner.LookPath("npm"); err != nil {
		return nil, fmt.Errorf("npm not found on PATH: %w", err)
	}
	if !IsThemeDirectory(cfg.Dir) {
		return nil, ErrNotThemeDirectory
	}

	result := &InstallResult{Version: cfg.CSSVersion}

	// Manifest first: npm init must have succeeded before anything is
	// written.
	if err := EnsureManifest(cfg.Dir, runner); err != nil {
		return nil, err
	}
	if err := SetScript(cfg.Dir, ScriptName, buildCommand(cfg.CSSVersion), true); err != nil {
		return nil, err
	}
	result.addStep(ManifestFile, StatusUpdated)

	for _, dir := range []string{AssetsDir, SrcDir} {
		if err := ensureDir(filepath.Join(cfg.Dir, dir)); err != nil {
			return nil, err
		}
	}

	if cfg.CSSVersion == VersionV3 {
		created, err := writeIfAbsent(filepath.Join(cfg.Dir, ConfigFile), tailwindConfigJS)
		if err != nil {
			return nil, err
		}
		result.addStep(ConfigFile, createdStatus(created))
	}
	created, err := writeIfAbsent(filepath.Join(cfg.Dir, filepath.FromSlash(EntryCSSFile)), entryCSS(cfg.CSSVersion))
	if err != nil {
		return nil, err
	}
	result.addStep(EntryCSSFile, createdStatus(created))

	patch, err := PatchTemplate(filepath.Join(cfg.Dir, filepath.FromSlash(MarkerFile)), LinkFragment)
	if err != nil {
		return nil, err
	}
	switch patch {
	case PatchInserted:
		result.addStep(MarkerFile, StatusUpdated)
	case PatchAlreadyPresent:
		result.addStep(MarkerFile, StatusUnchanged)
	case PatchFileMissing:
		result.addStep(MarkerFile, StatusSkipped)
		result.addWarning("%s not found; add %s to your layout manually", MarkerFile, LinkFragment)
	}

	for _, ign := range []struct {
		file  string
		lines []string
	}{
		{GitIgnoreFile, GitIgnoreLines},
		{ShopifyIgnoreFile, ShopifyIgnoreLines},
	} {
		res, err := Reconcile(filepath.Join(cfg.Dir, ign.file), ign.lines)
		if err != nil {
			return nil, err
		}
		result.addStep(ign.file, StepStatus(res))
	}

	if cfg.SkipInstall {
		result.addStep("dependencies", StatusSkipped)
		return result, nil
	}
	if err := runner.Run(cfg.Dir, "npm", installArgs(cfg.CSSVersion)...); err != nil {
		return nil, fmt.Errorf("installing dependencies: %w", err)
	}
	result.addStep("dependencies", StatusUpdated)

	return result, nil
}

func createdStatus(created bool) StepStatus {
	if created {
		return StatusCreated
	}
	return StatusUnchanged
}
