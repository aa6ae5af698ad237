package main

import (
	"fmt"
	"os"

	"github.com/aretw0/dentsim/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dentsim",
	Short: "dentsim is a training simulator for dental front-office software",
	Long: `dentsim models a dental clinic as an immutable session state, replays
trainee actions against it and grades them against an assessment catalog.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// sharedOptions reads the persistent flags.
func sharedOptions(cmd *cobra.Command) cli.Options {
	debug, _ := cmd.Flags().GetBool("debug")
	seedPath, _ := cmd.Flags().GetString("seed")
	catalogPath, _ := cmd.Flags().GetString("catalog")
	return cli.Options{
		Debug:       debug,
		SeedPath:    seedPath,
		CatalogPath: catalogPath,
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().String("seed", "", "YAML dataset to start sessions from (default: built-in clinic)")
	rootCmd.PersistentFlags().String("catalog", "", "YAML assessment catalog (default: built-in catalog)")
}
