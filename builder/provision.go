package builder

// VolumeLabel is the FAT32 label stamped on the boot partition. The
// kernel locates its root volume by it.
const VolumeLabel = "UNIXV11"

// Provisioner partitions, formats and populates an allocated raw image
// so the firmware can boot from it: a GPT label, one FAT32 partition,
// and the staging tree copied to the volume root.
type Provisioner interface {
	Provision(image, distDir string) error
}

// NewProvisioner picks the implementation for the host OS. Darwin hosts
// go through hdiutil/diskutil, everything else through a loop device.
func NewProvisioner(goos string, r Runner) Provisioner {
	if goos == "darwin" {
		return &diskutilProvisioner{run: r}
	}
	return &loopbackProvisioner{run: r}
}
