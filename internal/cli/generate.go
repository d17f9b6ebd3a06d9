package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/x402-marketplace/clarigen/internal/generator"
	"github.com/x402-marketplace/clarigen/internal/logging"
)

type generateOptions struct {
	output string
	dryRun bool
}

// generateOutput is the payload written by `clarigen generate --json`.
type generateOutput struct {
	Catalog string            `json:"catalog"`
	DryRun  bool              `json:"dry_run"`
	Result  *generator.Result `json:"result,omitempty"`
	Error   string            `json:"error,omitempty"`
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write every contract in the catalog",
		Long: `Render every catalog entry and write it to the output directory.

The directory is created if missing. Existing files with the same name are
overwritten; other files are left alone. The run stops at the first entry that
fails, keeping the files written before it.`,
		Example: `  # Generate the default catalog into ./contracts
  clarigen generate

  # Generate the sandbox catalog somewhere else
  clarigen generate --catalog sandbox --output build/contracts

  # See what would be written
  clarigen generate --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default is the catalog's output_dir, then \"contracts\")")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "render into memory and report without writing files")
	_ = a.v.BindPFlag("output_dir", cmd.Flags().Lookup("output"))

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	cat, err := a.loadCatalog()
	if err != nil {
		return err
	}
	set, err := a.loadTemplates()
	if err != nil {
		return err
	}

	outputDir := a.cfg.ResolveOutputDir(cat.OutputDir)
	logger := logging.Component("generator").With().
		Str("run_id", uuid.NewString()).
		Str("catalog", cat.Name).
		Logger()

	genOpts := []generator.Option{generator.WithLogger(logger)}
	if opts.dryRun {
		genOpts = append(genOpts, generator.WithTarget(generator.NewMemTarget()))
	}

	progress := a.startProgress(cmd.ErrOrStderr(), fmt.Sprintf("Generating %d contracts from catalog %s", cat.Len(), cat.Name))
	result, genErr := generator.New(genOpts...).Generate(outputDir, set, cat.Contracts)
	if genErr != nil {
		progress.Fail(nil)
	} else {
		progress.Done()
		logger.Info().
			Str("output_dir", outputDir).
			Int("count", result.Count).
			Bool("dry_run", opts.dryRun).
			Msg("generated contracts")
	}

	out := cmd.OutOrStdout()
	if a.isJSON() {
		payload := generateOutput{Catalog: cat.Name, DryRun: opts.dryRun, Result: result}
		if genErr != nil {
			payload.Error = genErr.Error()
		}
		if err := writeJSON(out, payload); err != nil {
			return err
		}
		return genErr
	}

	if result != nil {
		verb := "Generated"
		if opts.dryRun {
			verb = "Would generate"
		}
		for _, file := range result.Files {
			fmt.Fprintf(out, "%s %s\n", verb, file.Name)
		}
	}
	if genErr != nil {
		return genErr
	}

	if opts.dryRun {
		fmt.Fprintln(out, styled(out, mutedStyle, fmt.Sprintf("Dry run: %d contracts rendered, nothing written to %s.", result.Count, outputDir)))
		return nil
	}
	fmt.Fprintln(out, styled(out, successStyle, fmt.Sprintf("Successfully generated %d contracts.", result.Count)))
	return nil
}
