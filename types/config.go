package types

import "fmt"

// Config is the whole build configuration. It is assembled once from
// the config file and command flags, then passed read-only through the
// pipeline stages.
type Config struct {
	// Arch is the user-supplied architecture token, resolved by the
	// arch package before anything else runs.
	Arch string `json:",omitempty"`

	// DiskMB is the raw disk image size in MiB.
	DiskMB int `json:",omitempty"`

	// RAMMB is the guest memory size in MiB.
	RAMMB int `json:",omitempty"`

	// CPUs is the guest vCPU count.
	CPUs int `json:",omitempty"`

	// Clean wipes toolchain caches and previous outputs before building.
	Clean bool `json:",omitempty"`

	// NoRun stops the pipeline after image assembly.
	NoRun bool `json:",omitempty"`

	// Verbose surfaces full compiler output and echoes every external
	// command line before it runs.
	Verbose bool `json:",omitempty"`

	// EfiDir and KernelDir are the two cargo project directories.
	EfiDir    string `json:",omitempty"`
	KernelDir string `json:",omitempty"`

	// DistDir is the staging tree mirrored onto the ESP.
	DistDir string `json:",omitempty"`

	// ShowWarnings and ShowDebug gate the logger levels.
	ShowWarnings bool `json:",omitempty"`
	ShowDebug    bool `json:",omitempty"`
}

// NewConfig returns a Config with the documented defaults: a 64 MiB
// disk, 512 MiB of RAM and a single vCPU.
func NewConfig() *Config {
	return &Config{
		DiskMB:    64,
		RAMMB:     512,
		CPUs:      1,
		EfiDir:    "efi",
		KernelDir: "kernel",
		DistDir:   "dist",
	}
}

// Validate rejects configurations no stage could act on. It runs after
// all merges, so a bad value from any source is caught in one place.
func (c *Config) Validate() error {
	if c.DiskMB <= 0 {
		return fmt.Errorf("disk size must be a positive number of MiB, got %d", c.DiskMB)
	}
	if c.RAMMB <= 0 {
		return fmt.Errorf("ram size must be a positive number of MiB, got %d", c.RAMMB)
	}
	if c.CPUs <= 0 {
		return fmt.Errorf("cpu count must be positive, got %d", c.CPUs)
	}
	return nil
}
