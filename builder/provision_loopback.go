package builder

import (
	"os"
	"strings"

	"github.com/go-errors/errors"
)

// loopbackProvisioner provisions the image through a loop device. Every
// step touches the host block layer, so they all run under sudo.
type loopbackProvisioner struct {
	run Runner
}

// Provision attaches the image to a free loop device, writes a GPT
// label with one FAT32 partition spanning 1MiB to the end, formats and
// mounts it, and copies the staging tree in. Unmount, mount-point
// removal and detach are deferred so a failing step still releases the
// host resources in reverse acquisition order.
func (p *loopbackProvisioner) Provision(image, distDir string) error {
	out, err := p.run.Output("", "sudo", "losetup", "--find", "--show", image)
	if err != nil {
		return err
	}
	loop := strings.TrimSpace(string(out))
	defer p.run.Run("", "sudo", "losetup", "--detach", loop)

	if err := p.run.Run("", "sudo", "parted", "--script", loop,
		"mklabel", "gpt",
		"mkpart", "primary", "fat32", "1MiB", "100%"); err != nil {
		return err
	}
	if err := p.run.Run("", "sudo", "partprobe", loop); err != nil {
		return err
	}

	part := loop + "p1"
	if err := p.run.Run("", "sudo", "mkfs.vfat", "-F", "32", "-n", VolumeLabel, part); err != nil {
		return err
	}

	mnt, err := os.MkdirTemp("", "unixv11-esp-")
	if err != nil {
		return errors.Wrap(err, 1)
	}
	defer os.Remove(mnt)

	if err := p.run.Run("", "sudo", "mount", part, mnt); err != nil {
		return err
	}
	defer p.run.Run("", "sudo", "umount", mnt)

	return p.run.Run("", "sudo", "cp", "-r", distDir+"/.", mnt)
}
