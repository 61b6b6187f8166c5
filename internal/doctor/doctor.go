// Package doctor implements the read-only counterpart of the installer: it
// inspects a Shopify theme and reports what `tailship install` would still
// have to do, without writing anything.
package doctor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/yacobolo/tailship"
)

// linterName tags every issue, mirroring golangci-lint's "(linter)" suffix.
const linterName = "tailship"

// DefaultScanPaths are the glob patterns used to inventory the theme's
// Liquid files.
var DefaultScanPaths = []string{
	"layout/*.liquid",
	"templates/**/*.liquid",
	"sections/**/*.liquid",
	"snippets/**/*.liquid",
}

// Config holds doctor configuration.
type Config struct {
	Dir       string   // theme root directory
	ScanPaths []string // Liquid glob patterns; nil selects DefaultScanPaths
	UseColors bool     // force colored output
}

// Result aggregates doctor findings.
type Result struct {
	Issues       []Issue `json:"Issues"`
	ErrorCount   int     `json:"ErrorCount"`
	WarningCount int     `json:"WarningCount"`
	LiquidFiles  int     `json:"LiquidFiles"`  // files matched by ScanPaths
	LinkCount    int     `json:"LinkCount"`    // stylesheet tag occurrences in the layout
	ScriptFound  bool    `json:"ScriptFound"`  // package.json has a tailwind script
	CompiledCSS  bool    `json:"CompiledCSS"`  // assets/tailwind.css exists
}

func (r *Result) report(severity, file, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		FromLinter: linterName,
		Text:       fmt.Sprintf(format, args...),
		Severity:   severity,
		Pos:        Pos{Filename: file},
	})
	switch severity {
	case SeverityError:
		r.ErrorCount++
	case SeverityWarning:
		r.WarningCount++
	}
}

// Run checks the theme at cfg.Dir. It never modifies the theme; every check
// is a presence or substring test, plus ignore-pattern matching for the
// ignore files. The returned error covers only unexpected I/O failures,
// never findings.
func Run(cfg Config) (*Result, error) {
	res := &Result{}

	if !tailship.IsThemeDirectory(cfg.Dir) {
		res.report(SeverityError, tailship.MarkerFile,
			"not a Shopify theme: %s not found", tailship.MarkerFile)
		return res, nil
	}

	if err := checkLayout(cfg.Dir, res); err != nil {
		return nil, err
	}
	if err := checkManifest(cfg.Dir, res); err != nil {
		return nil, err
	}
	checkGeneratedFiles(cfg.Dir, res)
	checkIgnoreFile(cfg.Dir, tailship.GitIgnoreFile, tailship.GitIgnoreLines, res)
	checkIgnoreFile(cfg.Dir, tailship.ShopifyIgnoreFile, tailship.ShopifyIgnoreLines, res)
	if err := countLiquidFiles(cfg, res); err != nil {
		return nil, err
	}

	return res, nil
}

// checkLayout counts stylesheet tag occurrences in the theme layout. Zero
// means the install has not run; more than one means the layout was patched
// by hand as well.
func checkLayout(dir string, res *Result) error {
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(tailship.MarkerFile)))
	if err != nil {
		return fmt.Errorf("reading %s: %w", tailship.MarkerFile, err)
	}
	res.LinkCount = strings.Count(string(data), tailship.LinkFragment)
	switch {
	case res.LinkCount == 0:
		res.report(SeverityError, tailship.MarkerFile,
			"stylesheet tag missing; run `tailship install`")
	case res.LinkCount > 1:
		res.report(SeverityWarning, tailship.MarkerFile,
			"stylesheet tag appears %d times; remove the duplicates", res.LinkCount)
	}
	return nil
}

func checkManifest(dir string, res *Result) error {
	data, err := os.ReadFile(filepath.Join(dir, tailship.ManifestFile))
	if os.IsNotExist(err) {
		res.report(SeverityError, tailship.ManifestFile,
			"%s missing; run `tailship install`", tailship.ManifestFile)
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", tailship.ManifestFile, err)
	}

	var manifest struct {
		Scripts map[string]string `json:"scripts"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		res.report(SeverityError, tailship.ManifestFile, "not valid JSON: %v", err)
		return nil
	}
	if _, ok := manifest.Scripts[tailship.ScriptName]; !ok {
		res.report(SeverityError, tailship.ManifestFile,
			"no %q script; run `tailship install`", tailship.ScriptName)
		return nil
	}
	res.ScriptFound = true
	return nil
}

// checkGeneratedFiles verifies the CSS entry point exists, that a v3 entry
// point is paired with its tailwind.config.js, and whether the compiled CSS
// has been built yet.
func checkGeneratedFiles(dir string, res *Result) {
	entryPath := filepath.Join(dir, filepath.FromSlash(tailship.EntryCSSFile))
	entry, err := os.ReadFile(entryPath)
	if err != nil {
		res.report(SeverityError, tailship.EntryCSSFile,
			"%s missing; run `tailship install`", tailship.EntryCSSFile)
	} else if strings.Contains(string(entry), "@tailwind ") {
		// v3 directives need a config file next to them.
		if _, err := os.Stat(filepath.Join(dir, tailship.ConfigFile)); err != nil {
			res.report(SeverityError, tailship.ConfigFile,
				"%s missing but %s uses v3 directives", tailship.ConfigFile, tailship.EntryCSSFile)
		}
	}

	compiled := filepath.Join(dir, tailship.AssetsDir, "tailwind.css")
	if _, err := os.Stat(compiled); err == nil {
		res.CompiledCSS = true
	} else {
		res.report(SeverityWarning, "assets/tailwind.css",
			"not built yet; run `npm run %s`", tailship.ScriptName)
	}
}

// checkIgnoreFile verifies that the ignore file's patterns actually cover
// the required entries. Unlike the installer's literal reconciliation, this
// uses real gitignore matching, so an entry covered by a broader pattern is
// not flagged.
func checkIgnoreFile(dir, file string, required []string, res *Result) {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(dir, file))
	if err != nil {
		res.report(SeverityWarning, file, "%s missing; run `tailship install`", file)
		return
	}
	var uncovered []string
	for _, entry := range required {
		if !gi.MatchesPath(entry) {
			uncovered = append(uncovered, entry)
		}
	}
	if len(uncovered) > 0 {
		res.report(SeverityWarning, file,
			"does not cover %s", strings.Join(uncovered, ", "))
	}
}

func countLiquidFiles(cfg Config, res *Result) error {
	scanPaths := cfg.ScanPaths
	if len(scanPaths) == 0 {
		scanPaths = DefaultScanPaths
	}
	for _, pattern := range scanPaths {
		matches, err := doublestar.FilepathGlob(filepath.Join(cfg.Dir, filepath.FromSlash(pattern)))
		if err != nil {
			return fmt.Errorf("bad scan pattern %q: %w", pattern, err)
		}
		res.LiquidFiles += len(matches)
	}
	if res.LiquidFiles == 0 {
		res.report(SeverityWarning, cfg.Dir, "no Liquid files matched the scan patterns")
	}
	return nil
}
