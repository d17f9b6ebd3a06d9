package templates

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// Set maps a template kind to its template.
type Set map[string]*Template

// NewSet builds a set from templates. Later duplicates of a kind replace earlier ones.
func NewSet(templates ...*Template) Set {
	set := make(Set, len(templates))
	for _, tmpl := range templates {
		if tmpl == nil {
			continue
		}
		set[tmpl.Kind] = tmpl
	}
	return set
}

// Lookup returns the template for kind.
func (s Set) Lookup(kind string) (*Template, bool) {
	tmpl, ok := s[kind]
	return tmpl, ok
}

// Kinds returns the kinds in the set, sorted.
func (s Set) Kinds() []string {
	kinds := make([]string, 0, len(s))
	for kind := range s {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Suggest returns known kinds that fuzzily match kind, best match first.
func (s Set) Suggest(kind string) []string {
	if kind == "" {
		return nil
	}
	matches := fuzzy.Find(kind, s.Kinds())
	suggestions := make([]string, 0, len(matches))
	for _, match := range matches {
		suggestions = append(suggestions, match.Str)
	}
	return suggestions
}

func (s Set) addMissing(templates []*Template) {
	for _, tmpl := range templates {
		if _, exists := s[tmpl.Kind]; exists {
			continue
		}
		s[tmpl.Kind] = tmpl
	}
}
