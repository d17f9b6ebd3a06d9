// Package generator renders catalog entries into contract files.
package generator

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/x402-marketplace/clarigen/internal/catalog"
	"github.com/x402-marketplace/clarigen/internal/logging"
	"github.com/x402-marketplace/clarigen/internal/templates"
)

// File describes one written contract.
type File struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Kind  string `json:"kind"`
	Bytes int    `json:"bytes"`
}

// Result summarizes a generation run.
type Result struct {
	OutputDir string `json:"output_dir"`
	Files     []File `json:"files"`
	Count     int    `json:"count"`
}

// Generator writes rendered contracts to a Target.
type Generator struct {
	target Target
	logger zerolog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithTarget sets where contracts are written. Defaults to DiskTarget.
func WithTarget(target Target) Option {
	return func(g *Generator) {
		if target != nil {
			g.target = target
		}
	}
}

// WithLogger sets the generator logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		target: DiskTarget{},
		logger: logging.Component("generator"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate writes every spec to outputDir using the default disk target.
func Generate(outputDir string, set templates.Set, specs []catalog.ContractSpec) (*Result, error) {
	return New().Generate(outputDir, set, specs)
}

// Generate creates outputDir if needed, then renders and writes each spec in
// order, overwriting existing files. It stops at the first failing entry;
// files written before it stay on disk and are listed in the returned Result.
func (g *Generator) Generate(outputDir string, set templates.Set, specs []catalog.ContractSpec) (*Result, error) {
	result := &Result{
		OutputDir: outputDir,
		Files:     make([]File, 0, len(specs)),
	}

	if strings.TrimSpace(outputDir) == "" {
		return result, &EntryError{Index: -1, Err: fmt.Errorf("%w: output directory is required", ErrIOFailure)}
	}

	if err := g.target.MkdirAll(outputDir); err != nil {
		return result, &EntryError{Index: -1, Err: fmt.Errorf("%w: %w", ErrIOFailure, err)}
	}

	for i, spec := range specs {
		content, err := render(set, spec)
		if err != nil {
			return result, &EntryError{Index: i, File: spec.File, Kind: spec.Kind, Err: err}
		}

		path := filepath.Join(outputDir, spec.File)
		if err := g.target.WriteFile(path, []byte(content)); err != nil {
			return result, &EntryError{
				Index: i,
				File:  spec.File,
				Kind:  spec.Kind,
				Err:   fmt.Errorf("%w: write %s: %w", ErrIOFailure, path, err),
			}
		}

		g.logger.Debug().
			Str("file", spec.File).
			Str("kind", spec.Kind).
			Int("bytes", len(content)).
			Msg("wrote contract")

		result.Files = append(result.Files, File{
			Name:  spec.File,
			Path:  path,
			Kind:  spec.Kind,
			Bytes: len(content),
		})
		result.Count++
	}

	g.logger.Debug().
		Str("output_dir", outputDir).
		Int("count", result.Count).
		Msg("generated contracts")

	return result, nil
}

// Render returns the contract text for a single spec without writing it.
func Render(set templates.Set, spec catalog.ContractSpec) (string, error) {
	content, err := render(set, spec)
	if err != nil {
		return "", fmt.Errorf("contract %s: %w", spec.File, err)
	}
	return content, nil
}

// Check renders every spec without writing and returns one error per failing entry.
func Check(set templates.Set, specs []catalog.ContractSpec) []error {
	var errs []error
	for i, spec := range specs {
		if _, err := render(set, spec); err != nil {
			errs = append(errs, &EntryError{Index: i, File: spec.File, Kind: spec.Kind, Err: err})
		}
	}
	return errs
}

func render(set templates.Set, spec catalog.ContractSpec) (string, error) {
	tmpl, ok := set.Lookup(spec.Kind)
	if !ok {
		msg := fmt.Sprintf("%q", spec.Kind)
		if suggestions := set.Suggest(spec.Kind); len(suggestions) > 0 {
			msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(suggestions, ", "))
		}
		return "", fmt.Errorf("%w: %s", ErrMissingTemplateKind, msg)
	}

	content, err := templates.Render(tmpl, spec.Context)
	if err != nil {
		var missing *templates.MissingPlaceholderError
		if errors.As(err, &missing) {
			return "", fmt.Errorf("%w: %w", ErrMissingPlaceholder, err)
		}
		return "", err
	}
	return content, nil
}
