package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the contracts in a catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadCatalog()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.isJSON() {
				return writeJSON(out, cat)
			}

			rows := make([][]string, 0, cat.Len())
			for _, spec := range cat.Contracts {
				rows = append(rows, []string{spec.File, spec.Kind, formatContext(spec.Context)})
			}
			if err := writeTable(out, []string{"FILE", "KIND", "CONTEXT"}, rows); err != nil {
				return err
			}

			fmt.Fprintf(out, "\n%d contracts in %s: %s\n", cat.Len(), cat.Name, formatKindCounts(cat.KindCounts()))
			return nil
		},
	}
}

func newCatalogsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalogs",
		Short: "List available catalogs",
		Long:  "List catalogs from the project, user and system search paths, then the builtins.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogs, err := a.searchCatalogs()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.isJSON() {
				return writeJSON(out, catalogs)
			}

			rows := make([][]string, 0, len(catalogs))
			for _, cat := range catalogs {
				outputDir := cat.OutputDir
				if outputDir == "" {
					outputDir = "-"
				}
				rows = append(rows, []string{
					cat.Name,
					fmt.Sprintf("%d", cat.Len()),
					outputDir,
					cat.Source,
					cat.Description,
				})
			}
			return writeTable(out, []string{"NAME", "CONTRACTS", "OUTPUT DIR", "SOURCE", "DESCRIPTION"}, rows)
		},
	}
}
