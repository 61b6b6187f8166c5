package tailship

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoVersionSelected is returned when input ends before a valid version
// was entered.
var ErrNoVersionSelected = errors.New("no Tailwind version selected")

// PromptVersion asks which Tailwind release to install, reading from in and
// writing the prompt to out. Only the literals "v3" and "v4" are accepted
// (case-insensitive); anything else re-prompts.
func PromptVersion(in io.Reader, out io.Writer) (Version, error) {
	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "Tailwind CSS version to install [v3/v4]: ")
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		switch Version(strings.ToLower(strings.TrimSpace(line))) {
		case VersionV3:
			return VersionV3, nil
		case VersionV4:
			return VersionV4, nil
		}
		if err == io.EOF {
			return "", ErrNoVersionSelected
		}
	}
}
