package tailship

import (
	"fmt"
	"os"
	"strings"
)

// Ignore files reconciled by the installer.
const (
	GitIgnoreFile     = ".gitignore"
	ShopifyIgnoreFile = ".shopifyignore"
)

// Required ignore entries. node_modules must never be committed or pushed to
// Shopify; the npm and Tailwind build inputs are local-only and excluded
// from theme uploads.
var (
	GitIgnoreLines = []string{"node_modules/"}

	ShopifyIgnoreLines = []string{
		"node_modules/",
		"package.json",
		"package-lock.json",
		"tailwind.config.js",
		"src/",
	}
)

// Reconcile ensures every line in required is present in the file at path.
// A missing file is created with the full block. The presence check is
// collective and by substring: if any single required line is missing, the
// entire block is appended again, which duplicates lines already present.
// That over-append is deliberate and kept stable; callers and tests depend
// on it.
func Reconcile(path string, required []string) (ReconcileResult, error) {
	block := "\n" + strings.Join(required, "\n") + "\n"

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte(block), 0o644); err != nil {
			return "", fmt.Errorf("creating %s: %w", path, err)
		}
		return ReconcileCreated, nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	content := string(data)
	for _, line := range required {
		if !strings.Contains(content, line) {
			f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return "", fmt.Errorf("opening %s: %w", path, err)
			}
			_, werr := f.WriteString(block)
			cerr := f.Close()
			if werr != nil {
				return "", fmt.Errorf("appending to %s: %w", path, werr)
			}
			if cerr != nil {
				return "", fmt.Errorf("closing %s: %w", path, cerr)
			}
			return ReconcileUpdated, nil
		}
	}
	return ReconcileUnchanged, nil
}
