package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/itsmostafa/realbooks/internal/batch"
	"github.com/itsmostafa/realbooks/internal/compile"
	"github.com/itsmostafa/realbooks/internal/pdfdoc"
	"github.com/itsmostafa/realbooks/internal/song"
)

func TestFormatPages(t *testing.T) {
	tests := []struct {
		name  string
		pages []int
		want  string
	}{
		{"single", []int{7}, "p. 7"},
		{"run", []int{3, 4, 5}, "p. 3-5"},
		{"repeat", []int{1, 1, 2}, "p. 1 1-2"},
		{"mixed", []int{9, 3, 4, 12}, "p. 9 3-4 12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatPages(tt.pages); got != tt.want {
				t.Errorf("formatPages(%v) = %q, want %q", tt.pages, got, tt.want)
			}
		})
	}
}

func TestFormatSummary(t *testing.T) {
	var buf bytes.Buffer
	FormatSummary(&buf, &batch.Report{
		Entries:        3,
		EntriesSkipped: 1,
		SongsWritten:   12,
		SongsSkipped:   2,
		Directories:    []string{"songs/rb1"},
		Compiled: []*compile.Result{
			{Directory: "songs/rb1", Output: "songs/rb1/CombinedRealBook.pdf", Written: true, Pages: 20,
				Entries: []pdfdoc.OutlineEntry{{Title: "a"}, {Title: "b", PageIndex: 1}}},
			{Directory: "songs/empty"},
		},
		Elapsed: 1500 * time.Millisecond,
	})

	out := buf.String()
	for _, want := range []string{"Run Complete", "12", "1.50s", "songs/rb1", "2 songs, 20 pages", "no PDF files"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestFormatCheck(t *testing.T) {
	def, err := song.New("Solar", []int{5, 6})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	FormatCheck(&buf, &batch.CheckReport{
		Entries: []batch.CheckedEntry{{
			Index:           1,
			File:            "book.pdf",
			OutputDirectory: "out",
			Abbreviation:    "RB1",
			PageCount:       10,
			Songs:           []song.Definition{def},
			Problems:        []error{errors.New("page 40 is outside")},
		}},
		Problems: 1,
	})

	out := buf.String()
	for _, want := range []string{"#1 book.pdf", "Solar (RB1).pdf", "p. 5-6", "page 40 is outside", "1 problem(s) found"} {
		if !strings.Contains(out, want) {
			t.Errorf("check output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatOutline(t *testing.T) {
	var buf bytes.Buffer
	FormatOutline(&buf, []pdfdoc.OutlineEntry{{Title: "apple", PageIndex: 0}, {Title: "Zebra", PageIndex: 1}})

	out := buf.String()
	if !strings.Contains(out, "1 apple") || !strings.Contains(out, "2 Zebra") {
		t.Errorf("unexpected outline output:\n%s", out)
	}
}
