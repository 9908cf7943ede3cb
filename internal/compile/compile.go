// Package compile merges a directory of song PDFs into one book with an
// outline entry per song.
package compile

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/itsmostafa/realbooks/internal/pdfdoc"
	"golang.org/x/text/cases"
)

// DefaultFilename is the name of the compiled book written into each directory.
const DefaultFilename = "CombinedRealBook.pdf"

// Result describes one compiled directory.
type Result struct {
	Directory string
	Output    string
	// Written is false when no usable PDF was found and nothing was written.
	Written bool
	Pages   int
	Entries []pdfdoc.OutlineEntry
	Skipped []string
}

// Compiler merges directories of PDFs.
type Compiler struct {
	Log      *slog.Logger
	Compress bool
}

// New returns a Compiler logging to log.
func New(log *slog.Logger, compress bool) *Compiler {
	return &Compiler{Log: log, Compress: compress}
}

// Compile merges every PDF below directory, except outputFile itself, into
// outputFile. Files are ordered by their case-folded name without
// extension; each file contributes one outline entry pointing at its first
// page. Unreadable and empty files are skipped with a warning.
func (c *Compiler) Compile(directory, outputFile string) (*Result, error) {
	dir, err := filepath.Abs(directory)
	if err != nil {
		return nil, err
	}
	output, err := filepath.Abs(outputFile)
	if err != nil {
		return nil, err
	}

	result := &Result{Directory: dir, Output: output}

	// WalkDir does not descend into a root that is a symlink.
	files, err := c.discover(resolve(dir), output)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	if len(files) == 0 {
		c.Log.Warn("no PDF files found", "directory", dir)
		return result, nil
	}

	var docs []*pdfdoc.Document
	for _, path := range files {
		doc, err := pdfdoc.Open(path)
		if err != nil {
			c.Log.Warn("skipping unreadable PDF", "path", path, "error", err)
			result.Skipped = append(result.Skipped, path)
			continue
		}
		if doc.PageCount() == 0 {
			c.Log.Warn("skipping PDF without pages", "path", path)
			result.Skipped = append(result.Skipped, path)
			continue
		}

		result.Entries = append(result.Entries, pdfdoc.OutlineEntry{
			Title:     stem(path),
			PageIndex: result.Pages,
		})
		result.Pages += doc.PageCount()
		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		c.Log.Warn("no usable PDF files found", "directory", dir, "skipped", len(result.Skipped))
		return result, nil
	}

	var buf bytes.Buffer
	if err := pdfdoc.Merge(&buf, docs, result.Entries, pdfdoc.MergeOptions{Compress: c.Compress}); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Dir(output), err)
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("writing compilation: %w", err)
	}

	result.Written = true
	c.Log.Info("created compilation", "path", output, "songs", len(result.Entries), "pages", result.Pages)
	return result, nil
}

// CompileDirectories compiles each directory into directory/filename.
// Directories that do not exist or fail to compile are logged and skipped.
func (c *Compiler) CompileDirectories(directories []string, filename string) []*Result {
	var results []*Result
	for _, directory := range directories {
		dir, err := filepath.Abs(directory)
		if err != nil {
			c.Log.Error("invalid directory", "directory", directory, "error", err)
			continue
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			c.Log.Warn("skipping path because it is not a directory", "directory", dir)
			continue
		}

		result, err := c.Compile(dir, filepath.Join(dir, filename))
		if err != nil {
			c.Log.Error("failed to compile directory", "directory", dir, "error", err)
			continue
		}
		results = append(results, result)
	}
	return results
}

// discover lists the PDFs below root other than exclude, in compile order.
// Only a failure to read root itself is returned; anything unreadable below
// it is logged and skipped.
func (c *Compiler) discover(root, exclude string) ([]string, error) {
	exclude = resolve(exclude)
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return c.walkError(root, path, d, err)
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil
		}
		if resolve(path) == exclude {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	fold := cases.Fold()
	keys := make(map[string]string, len(files))
	for _, f := range files {
		keys[f] = fold.String(stem(f))
	}
	sort.SliceStable(files, func(i, j int) bool {
		return keys[files[i]] < keys[files[j]]
	})
	return files, nil
}

// walkError reports err for path and tells WalkDir how to go on.
func (c *Compiler) walkError(root, path string, d fs.DirEntry, err error) error {
	if path == root {
		return err
	}
	c.Log.Warn("skipping unreadable path", "path", path, "error", err)
	if d != nil && d.IsDir() {
		return fs.SkipDir
	}
	return nil
}

// resolve follows symlinks when path exists.
func resolve(path string) string {
	if real, err := filepath.EvalSymlinks(path); err == nil {
		return real
	}
	return path
}

// stem returns the base name of path without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
