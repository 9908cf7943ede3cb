// Package extract writes one PDF per song from a real book.
package extract

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/itsmostafa/realbooks/internal/pdfdoc"
	"github.com/itsmostafa/realbooks/internal/song"
)

// SourceNotFoundError reports a real book that does not exist.
type SourceNotFoundError struct {
	Path string
	Err  error
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("input PDF '%s' was not found", e.Path)
}

func (e *SourceNotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return os.ErrNotExist
}

// PageOutOfBoundsError reports a song page that the real book does not have.
type PageOutOfBoundsError struct {
	Page      int
	Song      string
	Source    string
	PageCount int
}

func (e *PageOutOfBoundsError) Error() string {
	return fmt.Sprintf("page %d for '%s' is outside the bounds of '%s' (1-%d)", e.Page, e.Song, e.Source, e.PageCount)
}

// Skipped is a song that produced no output.
type Skipped struct {
	Song string
	Err  error
}

// Result summarises one extraction.
type Result struct {
	Source    string
	PageCount int
	Written   []string
	Skipped   []Skipped
}

// Extractor copies song pages out of real books.
type Extractor struct {
	Log *slog.Logger
}

// New returns an Extractor logging to log.
func New(log *slog.Logger) *Extractor {
	return &Extractor{Log: log}
}

// Extract writes every song of songs from sourcePath into outputDir. Songs
// referencing pages outside the source are reported and skipped; they do not
// stop the remaining songs. The only error returned is for a source that
// cannot be used at all.
func (e *Extractor) Extract(sourcePath string, songs []song.Definition, outputDir, abbreviation string) (*Result, error) {
	doc, err := openSource(sourcePath)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	result := &Result{Source: sourcePath, PageCount: doc.PageCount()}
	for _, s := range songs {
		path, err := e.extractSong(doc, s, outputDir, abbreviation)
		if err != nil {
			result.Skipped = append(result.Skipped, Skipped{Song: s.Name(), Err: err})
			continue
		}
		result.Written = append(result.Written, path)
	}

	return result, nil
}

func (e *Extractor) extractSong(doc *pdfdoc.Document, s song.Definition, outputDir, abbreviation string) (string, error) {
	if bounds := checkBounds(doc, s); bounds != nil {
		e.Log.Error("page out of bounds",
			"song", bounds.Song,
			"page", bounds.Page,
			"source", bounds.Source,
			"valid_range", fmt.Sprintf("1-%d", bounds.PageCount),
		)
		return "", bounds
	}

	var buf bytes.Buffer
	if err := doc.WritePages(&buf, s.Pages()); err != nil {
		e.Log.Error("failed to build song", "song", s.Name(), "source", doc.Path, "error", err)
		return "", err
	}

	path := filepath.Join(outputDir, s.Filename(abbreviation))
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		e.Log.Error("failed to write song", "song", s.Name(), "path", path, "error", err)
		return "", err
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	e.Log.Info("created song", "path", path, "pages", s.Len())
	return path, nil
}

func openSource(path string) (*pdfdoc.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &SourceNotFoundError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &SourceNotFoundError{Path: path}
	}
	doc, err := pdfdoc.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening real book: %w", err)
	}
	return doc, nil
}

// Validate opens sourcePath and reports, without writing anything, every
// song whose pages fall outside of it.
func Validate(sourcePath string, songs []song.Definition) (pageCount int, problems []error, err error) {
	doc, err := openSource(sourcePath)
	if err != nil {
		return 0, nil, err
	}
	for _, s := range songs {
		if bounds := checkBounds(doc, s); bounds != nil {
			problems = append(problems, bounds)
		}
	}
	return doc.PageCount(), problems, nil
}

// checkBounds returns the first page of s that doc does not have.
func checkBounds(doc *pdfdoc.Document, s song.Definition) *PageOutOfBoundsError {
	for _, page := range s.Pages() {
		if page < 1 || page > doc.PageCount() {
			return &PageOutOfBoundsError{Page: page, Song: s.Name(), Source: doc.Path, PageCount: doc.PageCount()}
		}
	}
	return nil
}
