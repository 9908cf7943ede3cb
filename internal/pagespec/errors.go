package pagespec

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec is the sentinel every error of this package unwraps to.
var ErrInvalidSpec = errors.New("invalid page specification")

// RangeError reports a range whose end is before its start, or one spanning
// more than MaxRangeLen pages.
type RangeError struct {
	Start   int
	End     int
	TooLong bool
}

func (e *RangeError) Error() string {
	if e.TooLong {
		return fmt.Sprintf("range %d-%d spans more than %d pages", e.Start, e.End, MaxRangeLen)
	}
	return fmt.Sprintf("range %d-%d: the end of the range cannot be smaller than the start", e.Start, e.End)
}

func (e *RangeError) Unwrap() error { return ErrInvalidSpec }

// TypeError reports a value that is neither a page, a range nor a group.
type TypeError struct {
	Kind string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("unsupported page specification of type %s: expected an integer, a 'start-end' string or a list of those", e.Kind)
}

func (e *TypeError) Unwrap() error { return ErrInvalidSpec }

// NumberError reports a page number that is not an integer.
type NumberError struct {
	Text string
	Err  error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("invalid page number %q", e.Text)
}

func (e *NumberError) Unwrap() []error { return []error{ErrInvalidSpec, e.Err} }
