package main

import (
	"github.com/aretw0/dentsim/internal/cli"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Replay an action script and print the scorecard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")
		strict, _ := cmd.Flags().GetBool("strict")

		return cli.Replay(cli.ReplayOptions{
			Options:    sharedOptions(cmd),
			ScriptPath: args[0],
			JSON:       jsonMode,
			Strict:     strict,
			Out:        cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().Bool("json", false, "Print outcomes and the report as JSON")
	replayCmd.Flags().Bool("strict", false, "Stop at the first skipped action")
}
