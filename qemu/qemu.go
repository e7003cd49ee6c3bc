package qemu

import (
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/go-errors/errors"

	"github.com/unixv11/build/arch"
	"github.com/unixv11/build/log"
	"github.com/unixv11/build/types"
)

// nvmeSerial is the serial number the guest kernel expects on its boot
// NVMe controller.
const nvmeSerial = "deadbeef"

// Hypervisor launches an assembled disk image under the architecture's
// qemu binary.
type Hypervisor struct {
	desc    arch.Descriptor
	cmd     *exec.Cmd
	drives  []drive
	devices []device
	display display
	serial  serial
	flags   []string
}

// New returns a Hypervisor for the resolved architecture.
func New(d arch.Descriptor) *Hypervisor {
	return &Hypervisor{desc: d}
}

func (h *Hypervisor) addFlag(flag string) {
	h.flags = append(h.flags, flag)
}

func (h *Hypervisor) addOption(flag, value string) {
	h.flags = append(h.flags, flag+" "+value)
}

func (h *Hypervisor) setConfig(c *types.Config, image string) {
	// tcg keeps the run identical across hosts; the guest does not
	// support every host's acceleration quirks yet
	h.addOption("-machine", h.desc.QemuMachine+",accel=tcg")
	h.addOption("-cpu", h.desc.QemuCPU)
	h.addOption("-smp", strconv.Itoa(c.CPUs))
	h.addOption("-m", strconv.Itoa(c.RAMMB)+"M")
	h.addOption("-bios", h.desc.Firmware)

	h.drives = append(h.drives, drive{path: image, format: "raw", iftype: "none", ID: "nvm"})
	h.devices = append(h.devices, device{driver: "nvme", serial: nvmeSerial, drive: "nvm"})

	h.addFlag("-no-reboot")
	h.display = display{disptype: "none"}
	h.serial = serial{serialtype: "stdio"}
}

// Args renders the full qemu argument list for the image.
func (h *Hypervisor) Args(c *types.Config, image string) []string {
	h.setConfig(c, image)
	args := []string{}

	args = append(args, h.flags...)
	for _, drive := range h.drives {
		args = append(args, drive.String())
	}
	for _, device := range h.devices {
		args = append(args, device.String())
	}
	args = append(args, h.display.String())
	args = append(args, h.serial.String())

	// The returned args must be tokenized by whitespace
	return strings.Fields(strings.Join(args, " "))
}

// Command prepares the qemu invocation and forwards terminating signals
// to it, so an interrupt lands in the guest's serial console run.
func (h *Hypervisor) Command(c *types.Config, image string) *exec.Cmd {
	args := h.Args(c, image)
	log.Infof("%s %s", h.desc.QemuBinary, strings.Join(args, " "))
	h.cmd = exec.Command(h.desc.QemuBinary, args...)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	go func(chan os.Signal) {
		<-sig
		h.Stop()
	}(sig)

	return h.cmd
}

// Start runs qemu with the serial console attached to the invoking
// terminal and blocks until the guest exits. A nonzero guest exit code
// comes back as an *exec.ExitError.
func (h *Hypervisor) Start(c *types.Config, image string) error {
	if h.cmd == nil {
		h.Command(c, image)
		h.cmd.Stdin = os.Stdin
		h.cmd.Stdout = os.Stdout
		h.cmd.Stderr = os.Stderr
	}

	if err := h.cmd.Run(); err != nil {
		return errors.Wrap(err, 1)
	}
	return nil
}

// Stop kills a running guest.
func (h *Hypervisor) Stop() {
	if h.cmd != nil && h.cmd.Process != nil {
		if err := h.cmd.Process.Kill(); err != nil {
			log.Error(err)
		}
		h.cmd.Wait()
	}
}
