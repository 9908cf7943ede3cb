// Package pdftest writes small PDF fixtures for tests.
//
// Every page gets a media box of a caller-chosen width so that tests can
// tell pages apart after they have been copied, reordered or merged.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PageHeight is the media box height of every generated page.
const PageHeight = 792

// Build returns a PDF with one page per width.
func Build(widths ...int) []byte {
	var buf bytes.Buffer
	var offsets []int

	startObj := func() int {
		offsets = append(offsets, buf.Len())
		return len(offsets)
	}

	buf.WriteString("%PDF-1.4\n")

	catalog := startObj()
	fmt.Fprintf(&buf, "%d 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n", catalog)

	pagesObj := startObj()
	kids := make([]byte, 0, len(widths)*8)
	for i := range widths {
		kids = fmt.Appendf(kids, "%d 0 R ", 3+2*i)
	}
	fmt.Fprintf(&buf, "%d 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", pagesObj, bytes.TrimSpace(kids), len(widths))

	for _, width := range widths {
		page := startObj()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << >> /Contents %d 0 R >>\nendobj\n",
			page, width, PageHeight, page+1)

		content := fmt.Sprintf("q 0 0 %d %d re S Q", width, PageHeight)
		stream := startObj()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", stream, len(content), content)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f\r\n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n\r\n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return buf.Bytes()
}

// Write creates dir/name with one page per width and returns its path.
func Write(t testing.TB, dir, name string, widths ...int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating fixture directory: %v", err)
	}
	if err := os.WriteFile(path, Build(widths...), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

// Widths returns the media box width of every page of the PDF at path.
func Widths(t testing.TB, path string) []int {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	api.DisableConfigDir()
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	dims, err := api.PageDims(f, conf)
	if err != nil {
		t.Fatalf("reading page dimensions of %s: %v", path, err)
	}
	widths := make([]int, len(dims))
	for i, d := range dims {
		widths[i] = int(d.Width + 0.5)
	}
	return widths
}
