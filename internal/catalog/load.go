package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadCatalog reads a single catalog from disk.
func LoadCatalog(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("catalog path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	cat, err := parseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	cat.Source = path
	return cat, nil
}

// LoadCatalogsFromDir loads all catalogs from a directory.
func LoadCatalogsFromDir(dir string) ([]*Catalog, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Catalog{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Catalog{}, nil
		}
		return nil, fmt.Errorf("read catalogs dir %s: %w", dir, err)
	}

	catalogs := make([]*Catalog, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		cat, err := LoadCatalog(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		catalogs = append(catalogs, cat)
	}

	sort.Slice(catalogs, func(i, j int) bool {
		return catalogs[i].Name < catalogs[j].Name
	})

	return catalogs, nil
}

func parseCatalog(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, err
	}

	cat.Name = strings.TrimSpace(cat.Name)
	cat.Description = strings.TrimSpace(cat.Description)
	cat.OutputDir = strings.TrimSpace(cat.OutputDir)
	for i := range cat.Contracts {
		cat.Contracts[i].File = strings.TrimSpace(cat.Contracts[i].File)
		cat.Contracts[i].Kind = strings.TrimSpace(cat.Contracts[i].Kind)
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}

	return &cat, nil
}
