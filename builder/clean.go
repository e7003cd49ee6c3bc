package builder

import (
	"github.com/go-errors/errors"
	"github.com/spf13/afero"

	"github.com/unixv11/build/log"
	"github.com/unixv11/build/types"
)

// Clean drops the cargo caches of both projects, the staging tree and
// any disk image left by a previous run of any architecture. It runs to
// completion before the compile stage starts.
func Clean(fs afero.Fs, c *types.Config, r Runner) error {
	for _, dir := range []string{c.EfiDir, c.KernelDir} {
		if err := r.Run(dir, "cargo", "clean"); err != nil {
			return err
		}
	}

	if err := fs.RemoveAll(c.DistDir); err != nil {
		return errors.Wrap(err, 1)
	}

	images, err := afero.Glob(fs, diskImagePrefix+"*"+diskImageExt)
	if err != nil {
		return errors.Wrap(err, 1)
	}
	for _, img := range images {
		log.Infof("removing %s", img)
		if err := fs.Remove(img); err != nil {
			return errors.Wrap(err, 1)
		}
	}
	return nil
}
