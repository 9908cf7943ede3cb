// Package pagespec parses and resolves page specifications.
//
// A page specification names the pages of a song inside a real book. It is
// one of three shapes:
//
//   - a single page, written as an integer (7) or a numeric string ("7");
//   - an inclusive ascending range, written as "start-end" ("12-14");
//   - an ordered group of nested specifications ([1, "3-4", 2]).
//
// Resolving a specification against an offset yields the absolute 1-based
// page numbers in order. Duplicates are kept.
package pagespec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxRangeLen is the largest number of pages a single range may span.
const MaxRangeLen = 1 << 16

// Spec is a page specification. The set of implementations is closed:
// Single, Range and Group.
type Spec interface {
	fmt.Stringer
	spec()
}

// Single is one page.
type Single struct {
	Page int
}

// Range is an inclusive page range. End must not be less than Start.
type Range struct {
	Start int
	End   int
}

// Group is an ordered collection of nested specifications.
type Group struct {
	Items []Spec
}

func (Single) spec() {}
func (Range) spec()  {}
func (Group) spec()  {}

func (s Single) String() string { return strconv.Itoa(s.Page) }

func (r Range) String() string { return fmt.Sprintf("%d-%d", r.Start, r.End) }

func (g Group) String() string {
	parts := make([]string, len(g.Items))
	for i, item := range g.Items {
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Resolve returns the absolute page numbers described by spec, with offset
// added to every page.
func Resolve(spec Spec, offset int) ([]int, error) {
	switch s := spec.(type) {
	case Single:
		page, err := shift(s.Page, offset)
		if err != nil {
			return nil, err
		}
		return []int{page}, nil
	case Range:
		if s.End < s.Start {
			return nil, &RangeError{Start: s.Start, End: s.End}
		}
		// The difference is exact in uint64 even when End-Start overflows int.
		if uint64(s.End)-uint64(s.Start) >= MaxRangeLen {
			return nil, &RangeError{Start: s.Start, End: s.End, TooLong: true}
		}
		first, err := shift(s.Start, offset)
		if err != nil {
			return nil, err
		}
		if _, err := shift(s.End, offset); err != nil {
			return nil, err
		}
		pages := make([]int, 0, s.End-s.Start+1)
		for i := range s.End - s.Start + 1 {
			pages = append(pages, first+i)
		}
		return pages, nil
	case Group:
		var pages []int
		for _, item := range s.Items {
			resolved, err := Resolve(item, offset)
			if err != nil {
				return nil, err
			}
			pages = append(pages, resolved...)
		}
		return pages, nil
	default:
		return nil, &TypeError{Kind: fmt.Sprintf("%T", spec)}
	}
}

// Parse reads the string form of a specification: "7" or "12-14".
// Surrounding whitespace is ignored, as is whitespace around either bound.
func Parse(text string) (Spec, error) {
	text = strings.TrimSpace(text)
	start, end, isRange := strings.Cut(text, "-")
	if !isRange {
		page, err := parseNumber(text)
		if err != nil {
			return nil, err
		}
		return Single{Page: page}, nil
	}

	first, err := parseNumber(start)
	if err != nil {
		return nil, err
	}
	last, err := parseNumber(end)
	if err != nil {
		return nil, err
	}
	return Range{Start: first, End: last}, nil
}

// shift adds offset to page, failing instead of wrapping around.
func shift(page, offset int) (int, error) {
	if (offset > 0 && page > math.MaxInt-offset) || (offset < 0 && page < math.MinInt-offset) {
		return 0, &NumberError{
			Text: fmt.Sprintf("%d%+d", page, offset),
			Err:  strconv.ErrRange,
		}
	}
	return page + offset, nil
}

func parseNumber(text string) (int, error) {
	text = strings.TrimSpace(text)
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, &NumberError{Text: text, Err: err}
	}
	return n, nil
}
