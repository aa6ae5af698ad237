package main

import (
	"fmt"

	"github.com/aretw0/dentsim"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dentsim",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dentsim version %s\n", dentsim.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
