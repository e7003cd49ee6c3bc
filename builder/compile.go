package builder

import (
	"path/filepath"

	"github.com/unixv11/build/arch"
	"github.com/unixv11/build/types"
)

// Compile runs the release builds for the bootloader and the kernel
// projects against the resolved cargo targets. The bootloader builds
// first; a failure in either aborts before any image is touched.
func Compile(c *types.Config, d arch.Descriptor, r Runner) error {
	projects := []struct {
		dir    string
		target string
	}{
		{c.EfiDir, d.EfiTarget},
		{c.KernelDir, d.KernelTarget},
	}

	for _, p := range projects {
		args := []string{"build", "--release", "--target", p.target}
		if !c.Verbose {
			args = append(args, "--quiet")
		}
		if err := r.Run(p.dir, "cargo", args...); err != nil {
			return err
		}
	}
	return nil
}

// EfiArtifact is where cargo leaves the compiled bootloader.
func EfiArtifact(c *types.Config, d arch.Descriptor) string {
	return filepath.Join(c.EfiDir, "target", d.EfiTarget, "release", "efi.efi")
}

// KernelArtifact is where cargo leaves the compiled kernel.
func KernelArtifact(c *types.Config, d arch.Descriptor) string {
	return filepath.Join(c.KernelDir, "target", d.KernelTarget, "release", "kernel")
}
