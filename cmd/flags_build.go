package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/unixv11/build/types"
)

// BuildCommandFlags consolidates all flags the build pipeline accepts
// in one struct
type BuildCommandFlags struct {
	DiskMB       int
	RAMMB        int
	CPUs         int
	NoRun        bool
	Clean        bool
	Verbose      bool
	ShowWarnings bool
	ShowDebug    bool
	Config       string

	cmdFlags *pflag.FlagSet
}

// MergeToConfig layers the configuration sources: built-in defaults,
// then the config file, then any flag given explicitly on the command
// line.
func (flags *BuildCommandFlags) MergeToConfig(c *types.Config) error {
	if flags.Config != "" {
		if err := unWarpConfig(strings.TrimSpace(flags.Config), c); err != nil {
			return err
		}
	}

	if flags.cmdFlags.Changed("disk") {
		c.DiskMB = flags.DiskMB
	}
	if flags.cmdFlags.Changed("ram") {
		c.RAMMB = flags.RAMMB
	}
	if flags.cmdFlags.Changed("cpus") {
		c.CPUs = flags.CPUs
	}

	if flags.NoRun {
		c.NoRun = true
	}
	if flags.Clean {
		c.Clean = true
	}
	if flags.Verbose {
		c.Verbose = true
	}
	if flags.ShowWarnings {
		c.ShowWarnings = true
	}
	if flags.ShowDebug {
		c.ShowDebug = true
	}

	return nil
}

// NewBuildCommandFlags returns an instance of BuildCommandFlags
func NewBuildCommandFlags(cmdFlags *pflag.FlagSet) (flags *BuildCommandFlags) {
	flags = &BuildCommandFlags{cmdFlags: cmdFlags}

	flags.DiskMB, _ = cmdFlags.GetInt("disk")
	flags.RAMMB, _ = cmdFlags.GetInt("ram")
	flags.CPUs, _ = cmdFlags.GetInt("cpus")
	flags.NoRun, _ = cmdFlags.GetBool("norun")
	flags.Clean, _ = cmdFlags.GetBool("clean")
	flags.Verbose, _ = cmdFlags.GetBool("verbose")
	flags.ShowWarnings, _ = cmdFlags.GetBool("show-warnings")
	flags.ShowDebug, _ = cmdFlags.GetBool("show-debug")
	flags.Config, _ = cmdFlags.GetString("config")

	return flags
}

// PersistBuildCommandFlags append the build pipeline flags to a command
func PersistBuildCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.IntP("disk", "d", 64, "disk image size in MiB")
	cmdFlags.IntP("ram", "m", 512, "guest memory in MiB")
	cmdFlags.IntP("cpus", "p", 1, "guest vCPU count")
	cmdFlags.BoolP("norun", "n", false, "assemble the image but do not launch the emulator")
	cmdFlags.Bool("clean", false, "wipe toolchain caches and previous outputs first")
	cmdFlags.BoolP("verbose", "v", false, "surface full compiler output and echo external commands")
	cmdFlags.Bool("show-warnings", false, "display warning messages")
	cmdFlags.Bool("show-debug", false, "display debug messages")
	cmdFlags.StringP("config", "c", "", "json file with configuration defaults")
}

// unWarpConfig loads a json config file into the configuration
func unWarpConfig(file string, c *types.Config) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("error reading config file %s: %v", file, err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("error parsing config file %s: %v", file, err)
	}
	return nil
}
