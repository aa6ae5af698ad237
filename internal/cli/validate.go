package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/aretw0/dentsim/internal/validator"
	"github.com/aretw0/dentsim/pkg/seed"
)

// Validate checks the seed dataset and the catalog. Without --seed the
// built-in dataset is checked.
func Validate(w io.Writer, opts Options) error {
	catalog, err := loadCatalog(opts.CatalogPath)
	if err != nil {
		return err
	}
	printSystemMessage(w, "Catalog '%s': %d modules, %d tasks", catalog.Name, len(catalog.Modules), catalog.NewGrid().Total())

	ds := seed.Default(time.Now())
	name := "built-in"
	if opts.SeedPath != "" {
		if ds, err = seed.Load(opts.SeedPath); err != nil {
			return fmt.Errorf("error loading seed: %w", err)
		}
		name = opts.SeedPath
	}
	if err := validator.ValidateDataset(ds); err != nil {
		return fmt.Errorf("seed '%s' is invalid: %w", name, err)
	}
	printSystemMessage(w, "Seed '%s': %d patients, %d appointments. OK", name, len(ds.Records.Patients), len(ds.Records.Appointments))
	return nil
}
