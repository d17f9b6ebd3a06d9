// Package cli implements the clarigen command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/x402-marketplace/clarigen/internal/catalog"
	"github.com/x402-marketplace/clarigen/internal/config"
	"github.com/x402-marketplace/clarigen/internal/logging"
	"github.com/x402-marketplace/clarigen/internal/templates"
)

type globalOptions struct {
	configFile   string
	logLevel     string
	jsonOutput   bool
	noProgress   bool
	projectDir   string
	catalog      string
	templatesDir string
}

// app holds state shared by one command tree.
type app struct {
	opts globalOptions
	v    *viper.Viper
	cfg  *config.Config
}

// NewRootCommand builds the clarigen command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "clarigen",
		Short: "Generate Clarity contract sources from templates",
		Long: `clarigen renders a catalog of Clarity contracts from a small set of
templates (SIP-010 tokens, SIP-009 NFTs, vaults and friends) and writes one
.clar file per catalog entry into an output directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.opts.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/clarigen/config.yaml)")
	flags.StringVar(&a.opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.BoolVar(&a.opts.jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&a.opts.noProgress, "no-progress", false, "disable progress output")
	flags.StringVar(&a.opts.projectDir, "project", "", "project directory searched for .clarigen overrides (default is the working directory)")
	flags.StringVarP(&a.opts.catalog, "catalog", "c", "", `catalog name or path to a catalog file (default "core")`)
	flags.StringVar(&a.opts.templatesDir, "templates-dir", "", "directory searched first for template overrides")

	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("catalog", flags.Lookup("catalog"))
	_ = a.v.BindPFlag("templates_dir", flags.Lookup("templates-dir"))

	cmd.AddCommand(
		newGenerateCmd(a),
		newListCmd(a),
		newCatalogsCmd(a),
		newTemplatesCmd(a),
		newRenderCmd(a),
		newCheckCmd(a),
	)

	return cmd
}

// Execute runs the command line and reports any error on stderr.
func Execute() error {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		printError(os.Stderr, err)
		return err
	}
	return nil
}

func (a *app) init(logOut io.Writer) error {
	cfg, err := config.Load(a.v, a.opts.configFile)
	if err != nil {
		return err
	}
	if err := logging.InitWithWriter(cfg.Logging.LoggingOptions(), logOut); err != nil {
		return err
	}
	a.cfg = cfg

	if a.opts.projectDir == "" {
		if wd, err := os.Getwd(); err == nil {
			a.opts.projectDir = wd
		}
	}
	return nil
}

func (a *app) isJSON() bool {
	return a.opts.jsonOutput
}

func (a *app) loadCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Find(a.opts.projectDir, a.cfg.Catalog)
	if err != nil {
		if errors.Is(err, catalog.ErrCatalogNotFound) {
			return nil, &PreflightError{
				Message:  fmt.Sprintf("catalog %q not found", a.cfg.Catalog),
				Hint:     "Pass a builtin catalog name or the path to a catalog YAML file",
				NextStep: "clarigen catalogs",
			}
		}
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

func (a *app) searchCatalogs() ([]*catalog.Catalog, error) {
	catalogs, err := catalog.LoadCatalogsFromSearchPaths(a.opts.projectDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogs: %w", err)
	}
	return catalogs, nil
}

func (a *app) loadTemplates() (templates.Set, error) {
	set, err := templates.LoadSetFromSearchPaths(a.opts.projectDir, a.cfg.TemplatesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	return set, nil
}

// PreflightError is a user-facing error with a remediation hint.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	return e.Message
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", styled(w, errorStyle, "Error:"), err)

	var preflight *PreflightError
	if errors.As(err, &preflight) {
		if preflight.Hint != "" {
			fmt.Fprintf(w, "Hint: %s\n", preflight.Hint)
		}
		if preflight.NextStep != "" {
			fmt.Fprintf(w, "Next: %s\n", preflight.NextStep)
		}
	}
}
