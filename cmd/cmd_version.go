package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unixv11/build/constants"
)

// VersionCommand provides version command
func VersionCommand() *cobra.Command {
	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Version",
		Run:   printVersion,
	}
	return cmdVersion
}

func printVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("build version: %s\n", constants.Version)
}
