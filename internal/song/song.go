// Package song validates song entries of a real book configuration.
package song

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/itsmostafa/realbooks/internal/pagespec"
	"gopkg.in/yaml.v3"
)

// Sentinel errors wrapped by ValidationError.
var (
	ErrMalformedEntry = errors.New("song definitions must map exactly one song name to a page specification")
	ErrEmptyName      = errors.New("song names must be non-empty")
	ErrEmptyPages     = errors.New("song does not reference any pages")
)

// ValidationError reports a song entry that could not be turned into a Definition.
type ValidationError struct {
	Name string // Song name, empty when the entry had no usable name
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("song %q: %v", e.Name, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Definition is a validated song: a name and the absolute 1-based pages to
// extract, in output order. Pages may repeat. Bounds are checked later,
// against the source document.
type Definition struct {
	name  string
	pages []int
}

// New builds a Definition from an already resolved page list.
func New(name string, pages []int) (Definition, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Definition{}, &ValidationError{Err: ErrEmptyName}
	}
	if len(pages) == 0 {
		return Definition{}, &ValidationError{Name: name, Err: ErrEmptyPages}
	}
	return Definition{name: name, pages: slices.Clone(pages)}, nil
}

// Build validates one configuration entry of the form `Name: <page spec>`
// and resolves its pages with offset.
func Build(node *yaml.Node, offset int) (Definition, error) {
	if node == nil || node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return Definition{}, &ValidationError{Err: ErrMalformedEntry}
	}

	key, value := node.Content[0], node.Content[1]
	if key.Kind != yaml.ScalarNode {
		return Definition{}, &ValidationError{Err: ErrMalformedEntry}
	}
	name := strings.TrimSpace(key.Value)
	if name == "" {
		return Definition{}, &ValidationError{Err: ErrEmptyName}
	}

	spec, err := pagespec.FromYAML(value)
	if err != nil {
		return Definition{}, &ValidationError{Name: name, Err: err}
	}
	pages, err := pagespec.Resolve(spec, offset)
	if err != nil {
		return Definition{}, &ValidationError{Name: name, Err: err}
	}

	return New(name, pages)
}

// Name returns the trimmed song name.
func (d Definition) Name() string { return d.name }

// Pages returns a copy of the page list.
func (d Definition) Pages() []int { return slices.Clone(d.pages) }

// Len returns the number of pages in the output document.
func (d Definition) Len() int { return len(d.pages) }

// Filename returns the output file name, "{name}.pdf" or
// "{name} ({abbreviation}).pdf".
func (d Definition) Filename(abbreviation string) string {
	if abbreviation != "" {
		return fmt.Sprintf("%s (%s).pdf", d.name, abbreviation)
	}
	return d.name + ".pdf"
}

func (d Definition) String() string {
	parts := make([]string, len(d.pages))
	for i, p := range d.pages {
		parts[i] = fmt.Sprint(p)
	}
	return fmt.Sprintf("%s [%s]", d.name, strings.Join(parts, " "))
}
