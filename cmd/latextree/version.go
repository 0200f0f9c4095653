package main

import (
	"fmt"

	"github.com/aretw0/latextree"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of latextree",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "latextree version %s\n", latextree.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
