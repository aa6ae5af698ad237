package assessment

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/aretw0/dentsim/pkg/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Module is one section of the assessment.
type Module struct {
	Title string   `yaml:"title" json:"title"`
	Steps []string `yaml:"steps" json:"steps"`
}

// Catalog describes the task grid a trainee is graded against.
type Catalog struct {
	Name          string   `yaml:"name" json:"name"`
	PassThreshold float64  `yaml:"pass_threshold" json:"pass_threshold"`
	MaxAttempts   int      `yaml:"max_attempts" json:"max_attempts"`
	Modules       []Module `yaml:"modules" json:"modules"`
}

// DefaultCatalog returns the built-in five-module catalog.
func DefaultCatalog() Catalog {
	c, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// LoadCatalog reads a catalog from a YAML file.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(c.Modules) == 0 {
		return Catalog{}, fmt.Errorf("catalog %q has no modules", c.Name)
	}
	for i, m := range c.Modules {
		if len(m.Steps) == 0 {
			return Catalog{}, fmt.Errorf("module %d (%s) has no steps", i, m.Title)
		}
	}
	if c.PassThreshold <= 0 || c.PassThreshold > 1 {
		c.PassThreshold = 0.8
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 2
	}
	return c, nil
}

// NewGrid returns an all-false grid shaped like the catalog.
func (c Catalog) NewGrid() domain.Grid {
	steps := make([]int, len(c.Modules))
	for i, m := range c.Modules {
		steps[i] = len(m.Steps)
	}
	return domain.NewGrid(steps)
}

// StepTitle returns the title of a cell, or a placeholder for unknown cells.
func (c Catalog) StepTitle(cell domain.Cell) string {
	if cell.Module < 0 || cell.Module >= len(c.Modules) {
		return fmt.Sprintf("module %d step %d", cell.Module, cell.Step)
	}
	steps := c.Modules[cell.Module].Steps
	if cell.Step < 0 || cell.Step >= len(steps) {
		return fmt.Sprintf("%s step %d", c.Modules[cell.Module].Title, cell.Step)
	}
	return steps[cell.Step]
}
