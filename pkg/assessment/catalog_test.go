package assessment_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/dentsim/pkg/assessment"
	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Shape(t *testing.T) {
	c := assessment.DefaultCatalog()

	require.Len(t, c.Modules, 5)
	for _, m := range c.Modules {
		assert.Len(t, m.Steps, 7, m.Title)
	}
	assert.Equal(t, 0.8, c.PassThreshold)
	assert.Equal(t, 2, c.MaxAttempts)

	g := c.NewGrid()
	assert.Equal(t, 35, g.Total())
	assert.Equal(t, 0, g.Completed())
}

func TestParseCatalog_Errors(t *testing.T) {
	_, err := assessment.ParseCatalog([]byte("name: empty\nmodules: []\n"))
	assert.Error(t, err)

	_, err = assessment.ParseCatalog([]byte("modules:\n  - title: A\n    steps: []\n"))
	assert.Error(t, err)

	_, err = assessment.ParseCatalog([]byte("modules: [oops"))
	assert.Error(t, err)
}

func TestLoadCatalog_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := []byte(`name: Mini
modules:
  - title: Only
    steps: [one, two]
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	c, err := assessment.LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, "Mini", c.Name)
	assert.Equal(t, 0.8, c.PassThreshold)
	assert.Equal(t, 2, c.MaxAttempts)
	assert.Equal(t, "two", c.StepTitle(domain.Cell{Module: 0, Step: 1}))
	assert.Equal(t, "Only step 9", c.StepTitle(domain.Cell{Module: 0, Step: 9}))
}

func TestScore(t *testing.T) {
	c := assessment.DefaultCatalog()
	g := c.NewGrid()

	for m := 0; m < 4; m++ {
		for s := 0; s < 7; s++ {
			g, _ = g.Mark(domain.Cell{Module: m, Step: s})
		}
	}

	r := c.Score(g, 1)
	assert.Equal(t, 28, r.Completed)
	assert.Equal(t, 35, r.Total)
	assert.Equal(t, 28, r.Required)
	assert.True(t, r.Passed)
	assert.Equal(t, 80.0, r.Percent)
	assert.Equal(t, 1, r.AttemptsRemaining)
	assert.Equal(t, 0, r.Modules[4].Completed)

	g2 := c.NewGrid()
	g2, _ = g2.Mark(domain.Cell{Module: 0, Step: 0})
	r2 := c.Score(g2, 3)
	assert.False(t, r2.Passed)
	assert.Equal(t, 0, r2.AttemptsRemaining)
}
