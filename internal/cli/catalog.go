package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/dentsim/internal/presentation/tui"
)

// PrintCatalog writes the assessment catalog as markdown or JSON.
func PrintCatalog(w io.Writer, opts Options, asJSON bool) error {
	catalog, err := loadCatalog(opts.CatalogPath)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(catalog)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", catalog.Name)
	fmt.Fprintf(&b, "Pass mark: %.0f%%. Attempts allowed: %d.\n\n", catalog.PassThreshold*100, catalog.MaxAttempts)
	for i, m := range catalog.Modules {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, m.Title)
		for j, s := range m.Steps {
			fmt.Fprintf(&b, "%d. %s\n", j+1, s)
		}
		b.WriteString("\n")
	}
	return tui.WriteMarkdown(w, b.String())
}
