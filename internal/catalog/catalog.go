// Package catalog provides the ordered list of contracts to generate.
package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrCatalogNameRequired is returned when a catalog has no name.
	ErrCatalogNameRequired = errors.New("catalog name is required")
	// ErrCatalogEmpty is returned when a catalog has no contracts.
	ErrCatalogEmpty = errors.New("catalog must have at least one contract")
	// ErrCatalogNotFound is returned when a catalog is not found.
	ErrCatalogNotFound = errors.New("catalog not found")
)

// ValidationError describes a validation error in a catalog.
type ValidationError struct {
	Field   string
	Index   int
	Message string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("catalog %s[%d]: %s", e.Field, e.Index, e.Message)
	}
	return fmt.Sprintf("catalog %s: %s", e.Field, e.Message)
}

// Catalog is an ordered set of contracts rendered in one run.
type Catalog struct {
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description" json:"description,omitempty"`
	OutputDir   string         `yaml:"output_dir,omitempty" json:"output_dir,omitempty"`
	Contracts   []ContractSpec `yaml:"contracts" json:"contracts"`
	Source      string         `yaml:"-" json:"source"` // file path or "builtin"
}

// ContractSpec is one catalog entry: the output file, its template kind,
// and the placeholder values that kind needs.
type ContractSpec struct {
	File    string            `yaml:"file" json:"file"`
	Kind    string            `yaml:"kind" json:"kind"`
	Context map[string]string `yaml:"context,omitempty" json:"context,omitempty"`
}

// Len returns the number of contracts in the catalog.
func (c *Catalog) Len() int {
	return len(c.Contracts)
}

// KindCounts returns the number of entries per template kind.
func (c *Catalog) KindCounts() map[string]int {
	counts := make(map[string]int)
	for _, spec := range c.Contracts {
		counts[spec.Kind]++
	}
	return counts
}

// Kinds returns the distinct kinds referenced by the catalog, sorted.
func (c *Catalog) Kinds() []string {
	counts := c.KindCounts()
	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Find returns the entry that writes file.
func (c *Catalog) Find(file string) (ContractSpec, bool) {
	for _, spec := range c.Contracts {
		if spec.File == file {
			return spec, true
		}
	}
	return ContractSpec{}, false
}

// Validate checks that the catalog is well formed. Template kinds and
// placeholders are checked at generation time against the loaded templates.
func (c *Catalog) Validate() error {
	if c.Name == "" {
		return ErrCatalogNameRequired
	}
	if len(c.Contracts) == 0 {
		return ErrCatalogEmpty
	}

	seen := make(map[string]int, len(c.Contracts))
	for i, spec := range c.Contracts {
		if spec.File == "" {
			return &ValidationError{Field: "contracts", Index: i, Message: "file is required"}
		}
		if !isBaseName(spec.File) {
			return &ValidationError{
				Field:   "contracts",
				Index:   i,
				Message: fmt.Sprintf("file %q must be a plain file name", spec.File),
			}
		}
		if spec.Kind == "" {
			return &ValidationError{Field: "contracts", Index: i, Message: "kind is required"}
		}
		if prev, dup := seen[spec.File]; dup {
			return &ValidationError{
				Field:   "contracts",
				Index:   i,
				Message: fmt.Sprintf("file %q already defined at index %d", spec.File, prev),
			}
		}
		seen[spec.File] = i
	}
	return nil
}

func isBaseName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return filepath.Base(name) == name
}
