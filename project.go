package tailship

import (
	"fmt"
	"os"
	"path/filepath"
)

// MarkerFile identifies a Shopify theme root. It doubles as the template
// that receives the stylesheet tag.
const MarkerFile = "layout/theme.liquid"

// IsThemeDirectory reports whether dir looks like a Shopify theme root,
// i.e. whether layout/theme.liquid exists beneath it.
func IsThemeDirectory(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(MarkerFile)))
	return err == nil && !info.IsDir()
}

// ensureDir creates dir if it does not already exist.
func ensureDir(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}
