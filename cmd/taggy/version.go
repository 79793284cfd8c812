package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/taggy"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := taggy.GetVersionInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "taggy %s (commit %s, built %s, %s)\n",
				info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
		},
	}
}
