package builder

import "strings"

// diskutilProvisioner provisions the image through the Darwin disk
// management stack. No elevated privileges needed.
type diskutilProvisioner struct {
	run Runner
}

// Provision attaches the raw image as a disk device, erases it into a
// GPT-labeled FAT32 volume and copies the staging tree onto the volume
// diskutil auto-mounts. The device is detached even when a step fails.
func (p *diskutilProvisioner) Provision(image, distDir string) error {
	out, err := p.run.Output("", "hdiutil", "attach", "-imagekey", "diskimage-class=CRawDiskImage", "-nomount", image)
	if err != nil {
		return err
	}
	device := strings.TrimSpace(string(out))
	defer p.run.Run("", "hdiutil", "detach", device)

	if err := p.run.Run("", "diskutil", "eraseDisk", "FAT32", VolumeLabel, "GPT", device); err != nil {
		return err
	}

	return p.run.Run("", "cp", "-R", distDir+"/.", "/Volumes/"+VolumeLabel)
}
