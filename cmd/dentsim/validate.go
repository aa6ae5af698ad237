package main

import (
	"github.com/aretw0/dentsim/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the seed dataset and catalog for broken references",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Validate(cmd.OutOrStdout(), sharedOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
