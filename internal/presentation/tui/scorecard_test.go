package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/dentsim/pkg/assessment"
	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorecard(t *testing.T) {
	catalog := assessment.DefaultCatalog()
	grid, changed := catalog.NewGrid().Mark(domain.Cell{Module: 0, Step: 0})
	require.True(t, changed)
	report := catalog.Score(grid, 1)

	md := Scorecard(report)

	assert.True(t, strings.HasPrefix(md, "# "+report.Name))
	assert.Contains(t, md, "**Not yet passed**: 1 of 35 tasks")
	assert.Contains(t, md, "Attempts used: 1, remaining: 1.")
	assert.Contains(t, md, "- [x] "+catalog.StepTitle(domain.Cell{Module: 0, Step: 0}))
	assert.Equal(t, 34, strings.Count(md, "- [ ] "))
}

func TestOutcome(t *testing.T) {
	catalog := assessment.DefaultCatalog()

	line := Outcome(domain.Outcome{
		Kind:     domain.KindSelectPatient,
		Applied:  true,
		Verified: []domain.Cell{{Module: 0, Step: 0}},
	}, catalog)
	assert.Equal(t, "`SELECT_PATIENT` applied, completed *"+catalog.StepTitle(domain.Cell{Module: 0, Step: 0})+"*", line)

	line = Outcome(domain.Outcome{
		Kind:        domain.KindDeletePatient,
		Diagnostics: []domain.Diagnostic{{Code: domain.DiagNotFound, Ref: "99", Message: "patient 99 not found"}},
	}, catalog)
	assert.Equal(t, "`DELETE_PATIENT` skipped, patient 99 not found (not_found)", line)
}

func TestWriteMarkdown_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, "# Title\n"))
	assert.Equal(t, "# Title\n", buf.String())
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "v0.1.0")
	assert.Contains(t, buf.String(), "dental front-office simulator v0.1.0")
	assert.NotContains(t, buf.String(), "\x1b[")
}
