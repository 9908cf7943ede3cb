package song

import (
	"errors"
	"reflect"
	"testing"

	"github.com/itsmostafa/realbooks/internal/pagespec"
	"gopkg.in/yaml.v3"
)

func entryNode(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("invalid test yaml: %v", err)
	}
	return doc.Content[0]
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		offset    int
		wantName  string
		wantPages []int
	}{
		{"single page", "Blue Monk: 42", 0, "Blue Monk", []int{42}},
		{"range with offset", "Autumn Leaves: 20-21", 6, "Autumn Leaves", []int{26, 27}},
		{"repeated chorus", `Intro: [1, 1, 2]`, 0, "Intro", []int{1, 1, 2}},
		{"trimmed name", `"  Solar  ": 300`, 0, "Solar", []int{300}},
		{"numeric name", "1999: 5", 0, "1999", []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := Build(entryNode(t, tt.src), tt.offset)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if def.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", def.Name(), tt.wantName)
			}
			if !reflect.DeepEqual(def.Pages(), tt.wantPages) {
				t.Errorf("Pages() = %v, want %v", def.Pages(), tt.wantPages)
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"scalar entry", "Blue Monk", ErrMalformedEntry},
		{"list entry", "[1, 2]", ErrMalformedEntry},
		{"two keys", "{A: 1, B: 2}", ErrMalformedEntry},
		{"empty mapping", "{}", ErrMalformedEntry},
		{"blank name", `"   ": 4`, ErrEmptyName},
		{"empty page list", "Nothing: []", ErrEmptyPages},
		{"inverted range", `Backwards: "9-3"`, pagespec.ErrInvalidSpec},
		{"missing pages", "Unfinished:", pagespec.ErrInvalidSpec},
		{"bad number", "Typo: 1o", pagespec.ErrInvalidSpec},
		{"range overflowing int", `Huge: "0-9223372036854775807"`, pagespec.ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(entryNode(t, tt.src), 0)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Build(%q) error = %v, want %v", tt.src, err, tt.want)
			}
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Errorf("expected *ValidationError, got %T", err)
			}
		})
	}

	if _, err := Build(nil, 0); !errors.Is(err, ErrMalformedEntry) {
		t.Errorf("Build(nil) error = %v, want ErrMalformedEntry", err)
	}
}

func TestDefinitionIsImmutable(t *testing.T) {
	pages := []int{1, 2, 3}
	def, err := New("Stella", pages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pages[0] = 99
	got := def.Pages()
	got[1] = 99

	if want := []int{1, 2, 3}; !reflect.DeepEqual(def.Pages(), want) {
		t.Errorf("Pages() = %v, want %v", def.Pages(), want)
	}
	if def.Len() != 3 {
		t.Errorf("Len() = %d, want 3", def.Len())
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(" ", []int{1}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
	if _, err := New("Nardis", nil); !errors.Is(err, ErrEmptyPages) {
		t.Errorf("expected ErrEmptyPages, got %v", err)
	}
}

func TestFilename(t *testing.T) {
	def, err := New("All The Things You Are", []int{12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		abbreviation string
		want         string
	}{
		{"", "All The Things You Are.pdf"},
		{"RB1", "All The Things You Are (RB1).pdf"},
	}
	for _, tt := range tests {
		if got := def.Filename(tt.abbreviation); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.abbreviation, got, tt.want)
		}
	}
}
