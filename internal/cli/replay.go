package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/dentsim"
	"github.com/aretw0/dentsim/internal/presentation/tui"
	"github.com/aretw0/dentsim/pkg/assessment"
	"github.com/aretw0/dentsim/pkg/domain"
)

// ReplayOptions configures the replay command.
type ReplayOptions struct {
	Options
	ScriptPath string
	JSON       bool
	Strict     bool
	Out        io.Writer
}

// replayResult is the JSON form of a replay.
type replayResult struct {
	Script   string            `json:"script"`
	Outcomes []domain.Outcome  `json:"outcomes"`
	Report   assessment.Report `json:"report"`
	Error    string            `json:"error,omitempty"`
}

// Replay runs a YAML action script against a fresh session and prints the
// per-step outcomes followed by the scorecard.
func Replay(opts ReplayOptions) error {
	logger := createLogger(opts.Debug)
	out := opts.Out

	script, err := dentsim.LoadScript(opts.ScriptPath)
	if err != nil {
		return err
	}
	sim, err := createSimulator(opts.Options, logger)
	if err != nil {
		return err
	}
	catalog := sim.Catalog()

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	quiet := opts.JSON
	if !quiet && tui.IsTerminal(out) {
		tui.PrintBanner(out, dentsim.Version)
	}
	if !quiet {
		name := script.Name
		if name == "" {
			name = opts.ScriptPath
		}
		printSystemMessage(out, "Replaying '%s' (%d steps)", name, len(script.Steps))
	}

	var outcomes []domain.Outcome
	runner := &dentsim.Runner{
		Strict: opts.Strict,
		OnStep: func(i int, o domain.Outcome) {
			outcomes = append(outcomes, o)
			if !quiet {
				fmt.Fprintf(out, "%3d. %s\n", i+1, tui.Outcome(o, catalog))
			}
		},
	}
	report, runErr := runner.Run(sigCtx, sim.NewSession(), script)

	if quiet {
		res := replayResult{Script: script.Name, Outcomes: outcomes, Report: report}
		if runErr != nil {
			res.Error = runErr.Error()
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
		return handleExecutionError(runErr)
	}

	fmt.Fprintln(out)
	if err := tui.WriteMarkdown(out, tui.Scorecard(report)); err != nil {
		return err
	}
	if runErr != nil && sigCtx.Signal() != nil {
		printSystemMessage(out, "Interrupted after %d steps.", len(outcomes))
	}
	return handleExecutionError(runErr)
}
