package builder

import (
	"github.com/dustin/go-humanize"
	"github.com/go-errors/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"

	"github.com/unixv11/build/arch"
	"github.com/unixv11/build/log"
	"github.com/unixv11/build/types"
)

const (
	diskImagePrefix = "unixv11-"
	diskImageExt    = ".disk"
)

// DiskImageName returns the image file name for the architecture,
// e.g. unixv11-amd64.disk.
func DiskImageName(d arch.Descriptor) string {
	return diskImagePrefix + d.DiskSuffix + diskImageExt
}

// Allocate writes a zero-filled raw disk image of sizeMB MiB, replacing
// any image from a previous run.
func Allocate(fs afero.Fs, name string, sizeMB int) error {
	f, err := fs.Create(name)
	if err != nil {
		return errors.Wrap(err, 1)
	}
	defer f.Close()

	total := int64(sizeMB) << 20
	bar := progressbar.DefaultBytes(total, "allocating "+name)
	defer bar.Close()

	buf := make([]byte, 1<<20)
	for i := 0; i < sizeMB; i++ {
		if _, err := f.Write(buf); err != nil {
			return errors.Wrap(err, 1)
		}
		bar.Add(len(buf))
	}

	if err := f.Close(); err != nil {
		return errors.Wrap(err, 1)
	}

	log.Infof("allocated %s (%s)", name, humanize.IBytes(uint64(total)))
	return nil
}

// Assemble stages the compiled artifacts, allocates the raw image and
// hands it to the host provisioner. It returns the image file name.
func Assemble(fs afero.Fs, c *types.Config, d arch.Descriptor, p Provisioner) (string, error) {
	if err := Stage(fs, c, d); err != nil {
		return "", err
	}

	image := DiskImageName(d)
	if err := Allocate(fs, image, c.DiskMB); err != nil {
		return "", err
	}

	if err := p.Provision(image, c.DistDir); err != nil {
		return "", err
	}
	return image, nil
}
