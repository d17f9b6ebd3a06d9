package templates

import (
	"os"
	"path/filepath"
)

// TemplateSearchPaths returns template search directories in precedence order.
// An explicit dir, when set, is searched before the project and user directories.
func TemplateSearchPaths(projectDir, explicitDir string) []string {
	paths := make([]string, 0, 4)
	if explicitDir != "" {
		paths = append(paths, explicitDir)
	}
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".clarigen", "templates"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "clarigen", "templates"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "clarigen", "templates"))
	return paths
}

// LoadSetFromSearchPaths loads templates from search paths with first-hit precedence per kind,
// falling back to the builtins.
func LoadSetFromSearchPaths(projectDir, explicitDir string) (Set, error) {
	set := make(Set)

	for _, path := range TemplateSearchPaths(projectDir, explicitDir) {
		templates, err := LoadTemplatesFromDir(path)
		if err != nil {
			return nil, err
		}
		set.addMissing(templates)
	}

	builtins, err := LoadBuiltinTemplates()
	if err != nil {
		return nil, err
	}
	set.addMissing(builtins)

	return set, nil
}
