package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/x402-marketplace/clarigen/internal/generator"
)

type checkFailure struct {
	File  string `json:"file"`
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

type checkOutput struct {
	Catalog  string         `json:"catalog"`
	Checked  int            `json:"checked"`
	Failures []checkFailure `json:"failures"`
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify every catalog entry renders, without writing",
		Long: `Render every catalog entry in memory and report each entry whose template
kind is unknown or whose context is missing a placeholder value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadCatalog()
			if err != nil {
				return err
			}
			set, err := a.loadTemplates()
			if err != nil {
				return err
			}

			report := checkOutput{Catalog: cat.Name, Checked: cat.Len(), Failures: []checkFailure{}}
			for _, err := range generator.Check(set, cat.Contracts) {
				failure := checkFailure{Error: err.Error()}
				var entryErr *generator.EntryError
				if errors.As(err, &entryErr) {
					failure.File = entryErr.File
					failure.Kind = entryErr.Kind
					failure.Error = entryErr.Err.Error()
				}
				report.Failures = append(report.Failures, failure)
			}

			out := cmd.OutOrStdout()
			if a.isJSON() {
				if err := writeJSON(out, report); err != nil {
					return err
				}
			} else {
				for _, f := range report.Failures {
					fmt.Fprintf(out, "%s %s (%s): %s\n", styled(out, errorStyle, "FAIL"), f.File, f.Kind, f.Error)
				}
				ok := report.Checked - len(report.Failures)
				fmt.Fprintf(out, "%d of %d entries in %s render cleanly.\n", ok, report.Checked, cat.Name)
			}

			if len(report.Failures) > 0 {
				return fmt.Errorf("%d of %d entries failed", len(report.Failures), report.Checked)
			}
			return nil
		},
	}
}
