package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/dentsim"
	"github.com/aretw0/dentsim/internal/logging"
	"github.com/aretw0/dentsim/internal/validator"
	"github.com/aretw0/dentsim/pkg/assessment"
	"github.com/aretw0/dentsim/pkg/observability"
	"github.com/aretw0/dentsim/pkg/seed"
)

// Options holds the flags shared by every command.
type Options struct {
	Debug       bool
	SeedPath    string
	CatalogPath string
}

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout output).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelWarn)
}

// loadCatalog returns the catalog at path, or the built-in one.
func loadCatalog(path string) (assessment.Catalog, error) {
	if path == "" {
		return assessment.DefaultCatalog(), nil
	}
	c, err := assessment.LoadCatalog(path)
	if err != nil {
		return assessment.Catalog{}, fmt.Errorf("error loading catalog: %w", err)
	}
	return c, nil
}

// createSimulator initializes a Simulator with standard CLI conventions.
func createSimulator(opts Options, logger *slog.Logger, extra ...dentsim.Option) (*dentsim.Simulator, error) {
	simOpts := []dentsim.Option{dentsim.WithLogger(logger)}

	if opts.Debug {
		simOpts = append(simOpts, dentsim.WithLifecycleHooks(observability.LogHooks(logger)))
	}

	if opts.SeedPath != "" {
		ds, err := seed.Load(opts.SeedPath)
		if err != nil {
			return nil, fmt.Errorf("error loading seed: %w", err)
		}
		if err := validator.ValidateDataset(ds); err != nil {
			logger.Warn("seed dataset is inconsistent", "path", opts.SeedPath, "err", err)
		}
		simOpts = append(simOpts, dentsim.WithSeed(ds))
	}

	catalog, err := loadCatalog(opts.CatalogPath)
	if err != nil {
		return nil, err
	}
	simOpts = append(simOpts, dentsim.WithCatalog(catalog))

	return dentsim.New(append(simOpts, extra...)...), nil
}
