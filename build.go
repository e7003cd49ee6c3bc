package main

import (
	"errors"
	"os"
	"os/exec"

	"github.com/unixv11/build/cmd"
)

func main() {
	if err := cmd.GetRootCommand().Execute(); err != nil {
		// a failing external tool decides our exit code
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		cmd.ExitWithError(err.Error())
	}
}
