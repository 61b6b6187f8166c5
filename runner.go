package tailship

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// CommandRunner executes external commands in a working directory. The
// installer only ever runs npm through it; tests substitute a fake so no
// process is spawned.
type CommandRunner interface {
	// Run executes name with args in dir and returns an error on a
	// non-zero exit.
	Run(dir, name string, args ...string) error
	// LookPath resolves name on the system PATH.
	LookPath(name string) (string, error)
}

// ExecRunner runs commands with os/exec, streaming output to the caller's
// terminal so npm progress stays visible.
type ExecRunner struct{}

// Run implements CommandRunner.
func (ExecRunner) Run(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// LookPath implements CommandRunner.
func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
