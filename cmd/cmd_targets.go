package cmd

import (
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/unixv11/build/arch"
)

// TargetsCommand lists the architectures the tool can build for
func TargetsCommand() *cobra.Command {
	var cmdTargets = &cobra.Command{
		Use:   "targets",
		Short: "List target architectures",
		Run:   printTargets,
	}
	return cmdTargets
}

func printTargets(cmd *cobra.Command, args []string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Architecture", "Aliases", "EFI Target", "Kernel Target", "Status"})
	table.SetRowLine(true)

	for _, a := range arch.Supported() {
		d, err := arch.Resolve(a.String())
		if err != nil {
			continue
		}
		table.Append([]string{
			a.String(),
			strings.Join(arch.Aliases(a), ", "),
			d.EfiTarget,
			d.KernelTarget,
			"supported",
		})
	}
	table.Append([]string{
		arch.RiscV64.String(),
		strings.Join(arch.Aliases(arch.RiscV64), ", "),
		"-",
		"-",
		"unsupported",
	})

	table.Render()
}
