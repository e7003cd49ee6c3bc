package builder

import (
	"fmt"
	"strings"
)

// fakeRunner records every command instead of executing it. Commands
// whose line contains failOn return an error; Output answers from the
// outputs map, keyed by command name.
type fakeRunner struct {
	calls   []string
	outputs map[string]string
	failOn  string
}

func (r *fakeRunner) line(dir, name string, args ...string) string {
	line := name + " " + strings.Join(args, " ")
	if dir != "" {
		line = dir + ": " + line
	}
	return line
}

func (r *fakeRunner) Run(dir, name string, args ...string) error {
	line := r.line(dir, name, args...)
	r.calls = append(r.calls, line)
	if r.failOn != "" && strings.Contains(line, r.failOn) {
		return fmt.Errorf("%s exited with status 1", name)
	}
	return nil
}

func (r *fakeRunner) Output(dir, name string, args ...string) ([]byte, error) {
	line := r.line(dir, name, args...)
	r.calls = append(r.calls, line)
	if r.failOn != "" && strings.Contains(line, r.failOn) {
		return nil, fmt.Errorf("%s exited with status 1", name)
	}
	return []byte(r.outputs[name]), nil
}
