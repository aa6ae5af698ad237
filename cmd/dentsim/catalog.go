package main

import (
	"github.com/aretw0/dentsim/internal/cli"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the assessment catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")
		return cli.PrintCatalog(cmd.OutOrStdout(), sharedOptions(cmd), jsonMode)
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().Bool("json", false, "Print the catalog as JSON")
}
