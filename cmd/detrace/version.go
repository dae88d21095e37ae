package main

import (
	"fmt"

	"github.com/katalvlaran/detrace"
	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of detrace",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.out, "detrace version %s\n", detrace.Version)
		},
	}
}
