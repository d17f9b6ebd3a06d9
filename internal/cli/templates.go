package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

type templateSummary struct {
	Kind         string   `json:"kind"`
	Description  string   `json:"description,omitempty"`
	Placeholders []string `json:"placeholders"`
	Source       string   `json:"source"`
}

func newTemplatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List template kinds and their placeholders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.loadTemplates()
			if err != nil {
				return err
			}

			summaries := make([]templateSummary, 0, len(set))
			for _, kind := range set.Kinds() {
				tmpl, _ := set.Lookup(kind)
				summaries = append(summaries, templateSummary{
					Kind:         kind,
					Description:  tmpl.Description,
					Placeholders: tmpl.Placeholders(),
					Source:       tmpl.Source,
				})
			}

			out := cmd.OutOrStdout()
			if a.isJSON() {
				return writeJSON(out, summaries)
			}

			rows := make([][]string, 0, len(summaries))
			for _, s := range summaries {
				rows = append(rows, []string{s.Kind, strings.Join(s.Placeholders, ", "), s.Source, s.Description})
			}
			return writeTable(out, []string{"KIND", "PLACEHOLDERS", "SOURCE", "DESCRIPTION"}, rows)
		},
	}
}
