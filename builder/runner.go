package builder

import (
	"os"
	"os/exec"
	"strings"

	"github.com/go-errors/errors"

	"github.com/unixv11/build/log"
)

// Runner executes external commands on behalf of the pipeline stages.
// The default implementation shells out; tests substitute a recorder so
// no toolchain or disk utility ever runs.
type Runner interface {
	// Run executes the command in dir ("" for the working directory),
	// streaming its output to the terminal.
	Run(dir, name string, args ...string) error

	// Output executes the command and returns its stdout.
	Output(dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands on the host. Output is wired straight to the
// current process so tool diagnostics surface unchanged.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(dir, name string, args ...string) error {
	log.Infof("%s %s", name, strings.Join(args, " "))

	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, 1)
	}
	return nil
}

// Output implements Runner.
func (ExecRunner) Output(dir, name string, args ...string) ([]byte, error) {
	log.Infof("%s %s", name, strings.Join(args, " "))

	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrap(err, 1)
	}
	return out, nil
}
