// Package templates provides contract template loading and placeholder rendering.
package templates

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplateKindRequired is returned when a template file has no kind.
	ErrTemplateKindRequired = errors.New("template kind is required")
	// ErrTemplateBodyRequired is returned when a template file has an empty body.
	ErrTemplateBodyRequired = errors.New("template body is required")
)

// Template is the source body for one kind of contract.
type Template struct {
	Kind        string   `yaml:"kind"`
	Description string   `yaml:"description"`
	Body        string   `yaml:"body"`
	Tags        []string `yaml:"tags,omitempty"`
	Source      string   `yaml:"-"` // file path or "builtin"
}

// Placeholders returns the placeholder keys referenced by the template body.
func (t *Template) Placeholders() []string {
	return Placeholders(t.Body)
}

// MissingPlaceholderError reports a placeholder with no value in the render context.
type MissingPlaceholderError struct {
	Kind string
	Key  string
}

func (e *MissingPlaceholderError) Error() string {
	return fmt.Sprintf("template %q references {%s} but no value was provided", e.Kind, e.Key)
}
