package arch

import (
	"fmt"
	"strings"
)

// Arch identifies a target architecture the tool can build for.
type Arch string

const (
	// AMD64 is the x86-64 target
	AMD64 Arch = "amd64"
	// AArch64 is the 64-bit ARM target
	AArch64 Arch = "aarch64"
	// RiscV64 is recognized but cannot be built with the current toolchain
	RiscV64 Arch = "riscv64"
)

// Descriptor bundles every architecture-specific string the pipeline
// needs: cargo targets for the two projects, the conventional EFI boot
// file name, and the qemu invocation parameters.
type Descriptor struct {
	Arch Arch

	// cargo --target values for the bootloader and kernel projects
	EfiTarget    string
	KernelTarget string

	// file name the firmware looks for under /EFI/BOOT on the ESP
	BootFile string

	QemuBinary  string
	QemuCPU     string
	QemuMachine string
	Firmware    string

	// suffix used in the disk image file name, unixv11-<suffix>.disk
	DiskSuffix string
}

var descriptors = map[Arch]Descriptor{
	AMD64: {
		Arch:         AMD64,
		EfiTarget:    "x86_64-unknown-uefi",
		KernelTarget: "x86_64-unknown-none",
		BootFile:     "bootx64.efi",
		QemuBinary:   "qemu-system-x86_64",
		QemuCPU:      "qemu64",
		QemuMachine:  "q35",
		Firmware:     "OVMF.fd",
		DiskSuffix:   "amd64",
	},
	AArch64: {
		Arch:         AArch64,
		EfiTarget:    "aarch64-unknown-uefi",
		KernelTarget: "aarch64-unknown-none",
		BootFile:     "bootaa64.efi",
		QemuBinary:   "qemu-system-aarch64",
		QemuCPU:      "cortex-a72",
		QemuMachine:  "virt",
		Firmware:     "QEMU_EFI.fd",
		DiskSuffix:   "aarch64",
	},
}

// ErrUnsupported marks an architecture the tool recognizes but cannot
// build for.
type ErrUnsupported struct {
	Arch Arch
}

func (e *ErrUnsupported) Error() string {
	return fmt.Sprintf("%s is recognized but not supported: the toolchain has no working bare-metal target for it yet", e.Arch)
}

// Supported returns the architectures with a working toolchain, in a
// fixed order.
func Supported() []Arch {
	return []Arch{AMD64, AArch64}
}

// Normalize maps a user-supplied token onto a canonical Arch. Matching
// is case-insensitive and accepts the usual aliases. Returns "" when the
// token means nothing.
func Normalize(token string) Arch {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "amd64", "x86-64", "x86_64", "x64":
		return AMD64
	case "aarch64", "arm64":
		return AArch64
	case "riscv64", "risc-v64", "rv64":
		return RiscV64
	default:
		return ""
	}
}

// Resolve turns a user-supplied token into the Descriptor driving the
// rest of the pipeline. Unknown tokens and the riscv64 family fail here,
// before any build step runs.
func Resolve(token string) (Descriptor, error) {
	arch := Normalize(token)
	switch arch {
	case "":
		return Descriptor{}, fmt.Errorf("unknown architecture %q, see 'build help'", token)
	case RiscV64:
		return Descriptor{}, &ErrUnsupported{Arch: arch}
	}
	return descriptors[arch], nil
}

// Aliases returns the accepted spellings for a, the canonical one first.
func Aliases(a Arch) []string {
	switch a {
	case AMD64:
		return []string{"amd64", "x86-64", "x86_64", "x64"}
	case AArch64:
		return []string{"aarch64", "arm64"}
	case RiscV64:
		return []string{"riscv64", "risc-v64", "rv64"}
	}
	return nil
}

func (a Arch) String() string {
	return string(a)
}
