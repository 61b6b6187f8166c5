package tailship

import (
	"fmt"
	"os"
)

// Generated file locations relative to the theme root.
const (
	ConfigFile   = "tailwind.config.js"
	EntryCSSFile = "src/tailwind.css"
	AssetsDir    = "assets"
	SrcDir       = "src"
)

// ScriptName is the package.json scripts entry managed by the installer.
const ScriptName = "tailwind"

// LinkFragment is the stylesheet tag inserted into layout/theme.liquid. It
// references the compiled assets/tailwind.css via the asset_url filter.
const LinkFragment = `{{ 'tailwind.css' | asset_url | stylesheet_tag }}`

const tailwindConfigJS = `/** @type {import('tailwindcss').Config} */
module.exports = {
  content: ["./**/*.liquid"],
  theme: {
    extend: {},
  },
  plugins: [],
};
`

const entryCSSV3 = `@tailwind base;
@tailwind components;
@tailwind utilities;
`

// v4 is configured from CSS; @source keeps class detection scoped to the
// theme's Liquid files.
const entryCSSV4 = `@import "tailwindcss";

@source "../**/*.liquid";
`

// entryCSS returns the CSS entry-point template for the selected release.
func entryCSS(v Version) string {
	if v == VersionV4 {
		return entryCSSV4
	}
	return entryCSSV3
}

// buildCommand returns the package.json `tailwind` script for the selected
// release.
func buildCommand(v Version) string {
	if v == VersionV4 {
		return "npx @tailwindcss/cli -i ./src/tailwind.css -o ./assets/tailwind.css --watch"
	}
	return "npx tailwindcss -i ./src/tailwind.css -o ./assets/tailwind.css --watch"
}

// installArgs returns the npm arguments that install the selected release's
// dev dependencies.
func installArgs(v Version) []string {
	if v == VersionV4 {
		return []string{"install", "--save-dev", "tailwindcss", "@tailwindcss/cli"}
	}
	return []string{"install", "--save-dev", "tailwindcss@^3"}
}

// writeIfAbsent writes content to path only when no file exists there.
// Existing files are never validated or rewritten.
func writeIfAbsent(path, content string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
