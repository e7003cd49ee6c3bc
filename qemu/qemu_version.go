package qemu

import (
	"fmt"
	"os/exec"
	"regexp"
)

// Installed reports whether the qemu binary can be found on $PATH.
func Installed(binary string) bool {
	_, err := exec.LookPath(binary)
	return err == nil
}

// Version gives the version of the qemu binary installed locally.
func Version(binary string) (string, error) {
	versionData, err := exec.Command(binary, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("cannot execute %s: %v", binary, err)
	}
	return parseQemuVersion(versionData), nil
}

func parseQemuVersion(data []byte) string {
	rgx := regexp.MustCompile(`[0-9]+\.[0-9]+\.[0-9]+`)
	return rgx.FindString(string(data))
}
