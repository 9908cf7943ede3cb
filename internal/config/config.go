// Package config loads the YAML description of the real books to split.
//
// A configuration file is a list of entries:
//
//	- file: books/RealBook1.pdf
//	  offset: 6
//	  output_directory: songs/rb1
//	  abbreviation: RB1
//	  songs:
//	    - Autumn Leaves: 20-21
//	    - Blue Monk: 42
//
// Load only checks the shape of the root. Each entry is decoded separately
// with RawEntry.Decode so that one bad entry does not invalidate the others.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is the configuration read when no path is given.
	DefaultConfigFile = "config.yaml"
	// DefaultOutputDirectory receives extracted songs when an entry names none.
	DefaultOutputDirectory = "output_songs"
)

var knownKeys = []string{"file", "songs", "offset", "output_directory", "abbreviation"}

// RawEntry is one undecoded item of the configuration list.
type RawEntry struct {
	Index int // 1-based position in the file
	node  *yaml.Node
}

// Entry is a decoded real book definition.
type Entry struct {
	Index           int
	File            string
	Offset          int
	OutputDirectory string
	Abbreviation    string
	// Songs holds one `Name: <page spec>` mapping per song, validated later
	// by the song package so that a bad song only drops itself.
	Songs []*yaml.Node
}

// Load reads and parses the configuration file at path.
func Load(path string) ([]RawEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &LoadError{Path: path, Reason: "file was not found", Err: err}
		}
		return nil, &LoadError{Path: path, Reason: "cannot open file", Err: err}
	}
	defer f.Close()

	return Parse(path, f)
}

// Parse reads a configuration from r. path is only used in error messages.
func Parse(path string, r io.Reader) ([]RawEntry, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, &LoadError{Path: path, Reason: "contains invalid YAML", Err: err}
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.SequenceNode {
		return nil, &LoadError{Path: path, Reason: "the configuration root must be a list of real book definitions"}
	}

	entries := make([]RawEntry, len(root.Content))
	for i, node := range root.Content {
		entries[i] = RawEntry{Index: i + 1, node: node}
	}
	return entries, nil
}

// Decode validates the entry and applies defaults.
func (r RawEntry) Decode() (*Entry, error) {
	node := r.node
	if node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, r.fail("", "configuration entry must be a mapping")
	}

	entry := &Entry{Index: r.Index, OutputDirectory: DefaultOutputDirectory}
	var haveFile, haveSongs bool

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		switch key {
		case "file":
			path, err := stringValue(value)
			if err != nil || strings.TrimSpace(path) == "" {
				return nil, r.fail(key, "invalid path for 'file'")
			}
			entry.File = path
			haveFile = true
		case "songs":
			if value.Kind != yaml.SequenceNode {
				return nil, r.fail(key, "expected 'songs' to be a list")
			}
			entry.Songs = value.Content
			haveSongs = true
		case "offset":
			offset, err := intValue(value)
			if err != nil {
				return nil, r.fail(key, "offset must be an integer")
			}
			entry.Offset = offset
		case "output_directory":
			if value.ShortTag() == "!!null" {
				continue
			}
			dir, err := stringValue(value)
			if err != nil || strings.TrimSpace(dir) == "" {
				return nil, r.fail(key, "invalid output directory")
			}
			entry.OutputDirectory = dir
		case "abbreviation":
			if value.ShortTag() == "!!null" {
				continue
			}
			abbreviation, err := stringValue(value)
			if err != nil {
				return nil, r.fail(key, "abbreviation must be a string")
			}
			entry.Abbreviation = strings.TrimSpace(abbreviation)
		default:
			return nil, r.fail(key, fmt.Sprintf("unknown key (expected one of %s)", strings.Join(knownKeys, ", ")))
		}
	}

	if !haveFile {
		return nil, r.fail("file", "missing required key")
	}
	if !haveSongs {
		return nil, r.fail("songs", "missing required key")
	}
	return entry, nil
}

func (r RawEntry) fail(key, reason string) *EntryError {
	return &EntryError{Index: r.Index, Key: key, Reason: reason}
}

func stringValue(node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode || node.ShortTag() == "!!null" {
		return "", fmt.Errorf("expected a scalar, got %s", node.ShortTag())
	}
	return node.Value, nil
}

func intValue(node *yaml.Node) (int, error) {
	if node.Kind != yaml.ScalarNode || !slices.Contains([]string{"!!int", "!!str"}, node.ShortTag()) {
		return 0, fmt.Errorf("expected an integer, got %s", node.ShortTag())
	}
	if node.ShortTag() == "!!int" {
		var n int
		err := node.Decode(&n)
		return n, err
	}
	return strconv.Atoi(strings.TrimSpace(node.Value))
}
