package tailship

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// headClose is the anchor the stylesheet tag is inserted before.
const headClose = "</head>"

// ErrNoHeadTag is returned when the theme layout has no </head> to anchor
// the stylesheet tag on.
var ErrNoHeadTag = errors.New("no </head> tag found")

// PatchTemplate inserts fragment immediately before the first </head> in the
// file at path. A file that already contains the fragment is left untouched
// (PatchAlreadyPresent); a missing file is reported as PatchFileMissing
// without error so the caller can continue with a warning. A file without a
// </head> tag is an error: guessing an insertion point would corrupt the
// layout.
func PatchTemplate(path, fragment string) (PatchResult, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return PatchFileMissing, nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	content := string(data)
	if strings.Contains(content, fragment) {
		return PatchAlreadyPresent, nil
	}

	idx := strings.Index(content, headClose)
	if idx < 0 {
		return "", fmt.Errorf("%s: %w", path, ErrNoHeadTag)
	}

	patched := content[:idx] + fragment + "\n" + content[idx:]
	if err := os.WriteFile(path, []byte(patched), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return PatchInserted, nil
}
