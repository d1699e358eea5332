// Package span holds character offset pairs over a document text.
package span

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrMalformedSpan is returned when a position string is not of the form "<int>,<int>".
var ErrMalformedSpan = errors.New("malformed span")

// Span is a pair of character offsets into a document text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Parse parses the "left,right" offset pair used by the annotation files.
// Whitespace around each number is ignored.
func Parse(s string) (Span, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Span{}, errors.Wrapf(ErrMalformedSpan, "%q: want 2 parts, got %d", s, len(parts))
	}

	l, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Span{}, errors.Wrapf(ErrMalformedSpan, "%q: left offset: %v", s, err)
	}

	r, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Span{}, errors.Wrapf(ErrMalformedSpan, "%q: right offset: %v", s, err)
	}

	return Span{Start: l, End: r}, nil
}

// String formats the span back into the "left,right" file form.
func (s Span) String() string {
	return strconv.Itoa(s.Start) + "," + strconv.Itoa(s.End)
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether o lies inside s. Both ends are inclusive: o.Start may
// equal s.Start and o.End may equal s.End.
func (s Span) Contains(o Span) bool {
	return o.Start >= s.Start && o.End <= s.End
}

// Relative returns o shifted so that offsets count from the start of s.
func (s Span) Relative(o Span) Span {
	return Span{Start: o.Start - s.Start, End: o.End - s.Start}
}

// Text returns the characters of text covered by the span. Offsets are
// clamped to the text bounds, an inverted span yields "".
func (s Span) Text(text []rune) string {
	start, end := clamp(s.Start, len(text)), clamp(s.End, len(text))
	if start >= end {
		return ""
	}
	return string(text[start:end])
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
