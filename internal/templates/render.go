package templates

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern matches {identifier}. Clarity tuple literals like
// "{ title: ... }" never match because of the whitespace after the brace.
var placeholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Placeholders returns the distinct placeholder keys in body, in order of first appearance.
func Placeholders(body string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(body, -1)
	keys := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, match := range matches {
		key := match[1]
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

// Unresolved returns the placeholder tokens still present in text.
func Unresolved(text string) []string {
	return placeholderPattern.FindAllString(text, -1)
}

// Render substitutes every placeholder in the template body with its value from vars.
// Values are inserted verbatim. Keys in vars that the body does not reference are ignored.
func Render(tmpl *Template, vars map[string]string) (string, error) {
	if tmpl == nil {
		return "", fmt.Errorf("template is required")
	}

	for _, key := range tmpl.Placeholders() {
		if _, ok := vars[key]; !ok {
			return "", &MissingPlaceholderError{Kind: tmpl.Kind, Key: key}
		}
	}

	var out strings.Builder
	out.Grow(len(tmpl.Body))
	last := 0
	for _, loc := range placeholderPattern.FindAllStringSubmatchIndex(tmpl.Body, -1) {
		out.WriteString(tmpl.Body[last:loc[0]])
		out.WriteString(vars[tmpl.Body[loc[2]:loc[3]]])
		last = loc[1]
	}
	out.WriteString(tmpl.Body[last:])

	return out.String(), nil
}
