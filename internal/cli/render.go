package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/x402-marketplace/clarigen/internal/generator"
)

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render <file>",
		Short: "Print one rendered contract without writing it",
		Example: `  clarigen render alex-token.clar
  clarigen render --catalog sandbox executor-dao.clar`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadCatalog()
			if err != nil {
				return err
			}
			spec, ok := cat.Find(args[0])
			if !ok {
				return &PreflightError{
					Message:  fmt.Sprintf("contract %q is not in catalog %s", args[0], cat.Name),
					Hint:     "Use the file name exactly as listed",
					NextStep: "clarigen list --catalog " + cat.Name,
				}
			}

			set, err := a.loadTemplates()
			if err != nil {
				return err
			}
			content, err := generator.Render(set, spec)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.isJSON() {
				return writeJSON(out, map[string]any{
					"file":    spec.File,
					"kind":    spec.Kind,
					"content": content,
				})
			}
			_, err = io.WriteString(out, content)
			return err
		},
	}
}
