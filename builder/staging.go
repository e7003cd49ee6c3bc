package builder

import (
	"io"
	"path/filepath"

	"github.com/go-errors/errors"
	"github.com/spf13/afero"

	"github.com/unixv11/build/arch"
	"github.com/unixv11/build/types"
)

// KernelFileName is the path the bootloader reads the kernel from,
// relative to the volume root.
const KernelFileName = "unix"

// Stage mirrors the compiled artifacts into the dist tree the boot
// partition is populated from: <dist>/efi/boot/<bootfile> for the
// firmware and <dist>/unix for the bootloader.
func Stage(fs afero.Fs, c *types.Config, d arch.Descriptor) error {
	bootDir := filepath.Join(c.DistDir, "efi", "boot")
	if err := fs.MkdirAll(bootDir, 0755); err != nil {
		return errors.Wrap(err, 1)
	}

	if err := copyFile(fs, EfiArtifact(c, d), filepath.Join(bootDir, d.BootFile)); err != nil {
		return err
	}
	return copyFile(fs, KernelArtifact(c, d), filepath.Join(c.DistDir, KernelFileName))
}

func copyFile(fs afero.Fs, src, dst string) error {
	in, err := fs.Open(src)
	if err != nil {
		return errors.Wrap(err, 1)
	}
	defer in.Close()

	out, err := fs.Create(dst)
	if err != nil {
		return errors.Wrap(err, 1)
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return errors.Wrap(err, 1)
	}
	return out.Close()
}
