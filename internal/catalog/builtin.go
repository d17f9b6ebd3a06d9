package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

// DefaultName is the catalog generated when none is selected.
const DefaultName = "core"

//go:embed builtin/*.yaml
var builtinFS embed.FS

// LoadBuiltinCatalogs returns the catalogs bundled with clarigen.
func LoadBuiltinCatalogs() ([]*Catalog, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin catalogs: %w", err)
	}

	catalogs := make([]*Catalog, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin catalog %s: %w", entry.Name(), err)
		}
		cat, err := parseCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin catalog %s: %w", entry.Name(), err)
		}
		cat.Source = "builtin"
		catalogs = append(catalogs, cat)
	}

	sort.Slice(catalogs, func(i, j int) bool {
		return catalogs[i].Name < catalogs[j].Name
	})

	return catalogs, nil
}
