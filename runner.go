package dentsim

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/dentsim/pkg/assessment"
	"github.com/aretw0/dentsim/pkg/codec"
	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/aretw0/dentsim/pkg/session"
	"gopkg.in/yaml.v3"
)

// Script is a recorded sequence of actions, replayed in order.
//
//	name: first patient visit
//	steps:
//	  - type: SELECT_PATIENT
//	    payload: {patient_id: 1}
type Script struct {
	Name  string           `yaml:"name"`
	Steps []codec.Envelope `yaml:"steps"`
}

// LoadScript reads a YAML script from path.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript parses a YAML script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("failed to parse script: %w", err)
	}
	return s, nil
}

// StepFunc observes each replayed step after it has been committed.
type StepFunc func(index int, out domain.Outcome)

// Runner replays scripts against a session.
type Runner struct {
	// OnStep, when set, is called after every step.
	OnStep StepFunc
	// Strict aborts the replay at the first skipped step.
	Strict bool
}

// Run decodes and dispatches every step of script, then scores the session.
// Decoding errors abort the replay before any later step runs.
func (r *Runner) Run(ctx context.Context, ctrl *session.Controller, script Script) (assessment.Report, error) {
	for i, env := range script.Steps {
		if err := ctx.Err(); err != nil {
			return ctrl.Report(), err
		}
		action, err := codec.Decode(env)
		if err != nil {
			return ctrl.Report(), fmt.Errorf("step %d: %w", i+1, err)
		}
		_, out, err := ctrl.Dispatch(ctx, action)
		if err != nil {
			return ctrl.Report(), fmt.Errorf("step %d: %w", i+1, err)
		}
		if r.OnStep != nil {
			r.OnStep(i, out)
		}
		if r.Strict && !out.Applied {
			return ctrl.Report(), fmt.Errorf("step %d: %s was skipped", i+1, out.Kind)
		}
	}
	return ctrl.Report(), nil
}
