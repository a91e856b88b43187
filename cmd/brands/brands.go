// Package brands implements the brands command, which displays the
// configured brands in a formatted table.
package brands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/fashionbook/harvester/internal/config"
	"github.com/fashionbook/harvester/internal/domain"
	"github.com/fashionbook/harvester/internal/store"
)

// Command returns the brands command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "brands",
		Short: "List the configured brands",
		RunE: func(*cobra.Command, []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("brands: %w", err)
			}

			var brands []domain.Brand
			found, loadErr := store.New(cfg.DataDir).Load("brands.json", &brands)
			if loadErr != nil {
				return fmt.Errorf("brands: %w", loadErr)
			}
			if !found {
				fmt.Println("No brands configured. Add brands.json to the data directory.")
				return nil
			}

			renderTable(brands)

			return nil
		},
	}
}

// renderTable formats and displays the brands in a table.
func renderTable(brands []domain.Brand) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"ID", "Name"})

	for _, b := range brands {
		name := b.Name
		if !b.Valid() {
			name += " (skipped: missing id or name)"
		}
		t.AppendRow(table.Row{b.ID, name})
	}

	t.Render()
}
