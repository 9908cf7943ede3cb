// Package pdfdoc is the PDF backend of realbooks. It parses documents,
// copies page sequences into new documents and merges documents under an
// outline, using pdfcpu.
package pdfdoc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var disableConfigDir sync.Once

// newConfig returns a fresh pdfcpu configuration. pdfcpu mutates the
// configuration it is given, so every call gets its own.
func newConfig() *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Document is a PDF held in memory. The file is parsed once, when it is
// opened; page sequences are then cut from the parsed document.
type Document struct {
	Path      string
	data      []byte
	pageCount int

	mu  sync.Mutex
	ctx *model.Context
}

// Open reads and parses the PDF at path.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ctx, err := api.ReadAndValidate(bytes.NewReader(data), newConfig())
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("counting pages of %s: %w", path, err)
	}
	return &Document{Path: path, data: data, pageCount: ctx.PageCount, ctx: ctx}, nil
}

// PageCount returns the number of pages of the document.
func (d *Document) PageCount() int {
	return d.pageCount
}

// WritePages writes a new document to w made of the given 1-based pages, in
// order. A page may appear more than once.
func (d *Document) WritePages(w io.Writer, pages []int) error {
	if len(pages) == 0 {
		return fmt.Errorf("no pages selected from %s", d.Path)
	}
	for _, page := range pages {
		if page < 1 || page > d.pageCount {
			return fmt.Errorf("page %d is outside of %s (1-%d)", page, d.Path, d.pageCount)
		}
	}

	d.mu.Lock()
	extracted, err := pdfcpu.ExtractPages(d.ctx, pages, false)
	d.mu.Unlock()
	if err != nil {
		return fmt.Errorf("extracting pages from %s: %w", d.Path, err)
	}
	return api.WriteContext(extracted, w)
}

// OutlineEntry is one top level bookmark: a title and the 0-based index of
// the page it points at.
type OutlineEntry struct {
	Title     string
	PageIndex int
}

// MergeOptions controls Merge.
type MergeOptions struct {
	// Compress runs a lossless optimisation pass over the merged document
	// and writes it with compressed object and cross-reference streams.
	Compress bool
}

// Merge concatenates docs in order, attaches outline and writes the result to w.
func Merge(w io.Writer, docs []*Document, outline []OutlineEntry, opts MergeOptions) error {
	if len(docs) == 0 {
		return fmt.Errorf("nothing to merge")
	}

	readers := make([]io.ReadSeeker, len(docs))
	for i, doc := range docs {
		readers[i] = bytes.NewReader(doc.data)
	}

	var merged bytes.Buffer
	if err := api.MergeRaw(readers, &merged, false, newConfig()); err != nil {
		return fmt.Errorf("merging documents: %w", err)
	}
	data := merged.Bytes()

	if len(outline) > 0 {
		bookmarks := make([]pdfcpu.Bookmark, len(outline))
		for i, entry := range outline {
			bookmarks[i] = pdfcpu.Bookmark{Title: entry.Title, PageFrom: entry.PageIndex + 1}
		}
		var marked bytes.Buffer
		if err := api.AddBookmarks(bytes.NewReader(data), &marked, bookmarks, true, newConfig()); err != nil {
			return fmt.Errorf("adding outline: %w", err)
		}
		data = marked.Bytes()
	}

	if !opts.Compress {
		_, err := w.Write(data)
		return err
	}

	conf := newConfig()
	conf.WriteObjectStream = true
	conf.WriteXRefStream = true
	if err := api.Optimize(bytes.NewReader(data), w, conf); err != nil {
		return fmt.Errorf("compressing document: %w", err)
	}
	return nil
}

// ReadOutline returns the top level bookmarks of the PDF read from rs.
func ReadOutline(rs io.ReadSeeker) ([]OutlineEntry, error) {
	bookmarks, err := api.Bookmarks(rs, newConfig())
	if err != nil {
		return nil, err
	}
	entries := make([]OutlineEntry, len(bookmarks))
	for i, bm := range bookmarks {
		entries[i] = OutlineEntry{Title: bm.Title, PageIndex: bm.PageFrom - 1}
	}
	return entries, nil
}
