package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/unixv11/build/arch"
	"github.com/unixv11/build/builder"
	"github.com/unixv11/build/log"
	"github.com/unixv11/build/qemu"
	"github.com/unixv11/build/types"
)

// GetRootCommand provides the build command and its subcommands
func GetRootCommand() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "build <architecture>",
		Short: "Build a bootable UNIX v11 disk image and run it under qemu",
		Long: `Builds the EFI bootloader and the kernel for the given architecture,
assembles them into a GPT/FAT32 disk image and boots the image under
the architecture's qemu binary. Run 'build targets' to see the accepted
architecture names.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          buildCommandHandler,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	PersistBuildCommandFlags(rootCmd.Flags())

	rootCmd.AddCommand(TargetsCommand())
	rootCmd.AddCommand(VersionCommand())

	return rootCmd
}

func buildCommandHandler(cmd *cobra.Command, args []string) error {
	flags := NewBuildCommandFlags(cmd.Flags())

	c := types.NewConfig()
	if err := flags.MergeToConfig(c); err != nil {
		return err
	}
	log.InitDefault(os.Stdout, c)

	if len(args) == 0 {
		return fmt.Errorf("no target architecture given, run 'build help' to see the supported ones")
	}
	c.Arch = args[0]

	d, err := arch.Resolve(c.Arch)
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	runner := builder.ExecRunner{}
	hostFs := afero.NewOsFs()

	if c.Clean {
		if err := builder.Clean(hostFs, c, runner); err != nil {
			return err
		}
	}

	if err := builder.Compile(c, d, runner); err != nil {
		return err
	}

	image, err := builder.Assemble(hostFs, c, d, builder.NewProvisioner(runtime.GOOS, runner))
	if err != nil {
		return err
	}

	if c.NoRun {
		fmt.Printf("Bootable image file: %s\n", image)
		return nil
	}

	if !qemu.Installed(d.QemuBinary) {
		return fmt.Errorf("%s not found on $PATH", d.QemuBinary)
	}
	if version, err := qemu.Version(d.QemuBinary); err == nil {
		log.Debugf("using %s %s", d.QemuBinary, version)
	}

	return qemu.New(d).Start(c, image)
}
