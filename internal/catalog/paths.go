package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CatalogSearchPaths returns catalog search directories in precedence order.
func CatalogSearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".clarigen", "catalogs"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "clarigen", "catalogs"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "clarigen", "catalogs"))
	return paths
}

// LoadCatalogsFromSearchPaths loads catalogs from search paths with first-hit precedence.
func LoadCatalogsFromSearchPaths(projectDir string) ([]*Catalog, error) {
	seen := make(map[string]*Catalog)
	order := make([]string, 0)

	add := func(catalogs []*Catalog) {
		for _, cat := range catalogs {
			if _, exists := seen[cat.Name]; exists {
				continue
			}
			seen[cat.Name] = cat
			order = append(order, cat.Name)
		}
	}

	for _, path := range CatalogSearchPaths(projectDir) {
		catalogs, err := LoadCatalogsFromDir(path)
		if err != nil {
			return nil, err
		}
		add(catalogs)
	}

	builtins, err := LoadBuiltinCatalogs()
	if err != nil {
		return nil, err
	}
	add(builtins)

	resolved := make([]*Catalog, 0, len(order))
	for _, name := range order {
		resolved = append(resolved, seen[name])
	}
	return resolved, nil
}

// Find resolves nameOrPath to a catalog. A path to an existing file is loaded
// directly; anything else is looked up by name across the search paths.
func Find(projectDir, nameOrPath string) (*Catalog, error) {
	nameOrPath = strings.TrimSpace(nameOrPath)
	if nameOrPath == "" {
		nameOrPath = DefaultName
	}

	if info, err := os.Stat(nameOrPath); err == nil && !info.IsDir() {
		return LoadCatalog(nameOrPath)
	}

	catalogs, err := LoadCatalogsFromSearchPaths(projectDir)
	if err != nil {
		return nil, err
	}
	for _, cat := range catalogs {
		if cat.Name == nameOrPath {
			return cat, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, nameOrPath)
}
