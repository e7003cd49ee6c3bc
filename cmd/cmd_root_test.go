package cmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unixv11/build/cmd"
)

func TestBuildWithoutArchitectureFails(t *testing.T) {
	rootCmd := cmd.GetRootCommand()
	rootCmd.SetArgs([]string{})

	err := rootCmd.Execute()

	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "no target architecture")
}

func TestBuildUnknownArchitectureFails(t *testing.T) {
	rootCmd := cmd.GetRootCommand()
	rootCmd.SetArgs([]string{"sparc"})

	err := rootCmd.Execute()

	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "unknown architecture")
}

func TestBuildRiscVFails(t *testing.T) {
	rootCmd := cmd.GetRootCommand()
	rootCmd.SetArgs([]string{"riscv64"})

	err := rootCmd.Execute()

	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestBuildRejectsNegativeDiskSize(t *testing.T) {
	rootCmd := cmd.GetRootCommand()
	rootCmd.SetArgs([]string{"amd64", "--disk=-5"})

	err := rootCmd.Execute()

	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "positive")
}

func TestBuildRejectsUnknownFlag(t *testing.T) {
	rootCmd := cmd.GetRootCommand()
	rootCmd.SetArgs([]string{"amd64", "--frobnicate"})

	err := rootCmd.Execute()

	assert.NotNil(t, err)
}

func TestHelpSucceeds(t *testing.T) {
	rootCmd := cmd.GetRootCommand()
	rootCmd.SetArgs([]string{"help"})

	err := rootCmd.Execute()

	assert.Nil(t, err)
}
