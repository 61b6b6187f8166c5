package tailship

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestFile is the npm package descriptor at the theme root.
const ManifestFile = "package.json"

// EnsureManifest makes sure package.json exists in dir, invoking
// `npm init -y` through runner when it does not. A non-zero exit from npm is
// returned as an error and treated as fatal by the installer.
func EnsureManifest(dir string, runner CommandRunner) error {
	path := filepath.Join(dir, ManifestFile)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking %s: %w", ManifestFile, err)
	}
	if err := runner.Run(dir, "npm", "init", "-y"); err != nil {
		return fmt.Errorf("npm init failed: %w", err)
	}
	return nil
}

// SetScript sets scripts[name] in package.json to command. With overwrite
// false an existing entry is left alone; with overwrite true it is always
// replaced. The manifest is rewritten with two-space indentation and sorted
// keys, so repeated calls with the same command leave the file byte-stable.
func SetScript(dir, name, command string, overwrite bool) error {
	path := filepath.Join(dir, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", ManifestFile, err)
	}

	var manifest map[string]any
	if err := json.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("parsing %s: %w", ManifestFile, err)
	}

	scripts, ok := manifest["scripts"].(map[string]any)
	if !ok {
		scripts = map[string]any{}
		manifest["scripts"] = scripts
	}
	if _, exists := scripts[name]; exists && !overwrite {
		return nil
	}
	scripts[name] = command

	out, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", ManifestFile, err)
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", ManifestFile, err)
	}
	return nil
}
