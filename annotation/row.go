package annotation

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/revelaction/mpqa/layout"
	"github.com/revelaction/mpqa/span"
)

const (
	indexColumn = 0
	spanColumn  = 1

	commentPrefix = "#"
)

// ErrMalformedRow is returned for annotation rows missing a required field.
var ErrMalformedRow = errors.New("malformed annotation row")

// IsComment reports whether the row is a "#" comment line.
func IsComment(row []string) bool {
	return len(row) > 0 && strings.HasPrefix(strings.TrimSpace(row[indexColumn]), commentPrefix)
}

// ParseRow builds an Annotation from one tab separated row of an annotation
// file. ok is false for comment rows, which produce nothing.
//
// The kind and property columns depend on the corpus layout. Rows with a
// property field get their properties parsed and their enclosing sentence
// resolved against sentences. Rows without one are left unresolved.
func ParseRow(row []string, sentences []span.Span, l layout.Layout) (a Annotation, ok bool, err error) {
	if len(row) == 0 {
		return a, false, errors.Wrap(ErrMalformedRow, "empty row")
	}

	if IsComment(row) {
		return a, false, nil
	}

	if len(row) <= l.TypeColumn {
		return a, false, errors.Wrapf(ErrMalformedRow, "want at least %d fields, got %d", l.TypeColumn+1, len(row))
	}

	index, err := strconv.Atoi(strings.TrimSpace(row[indexColumn]))
	if err != nil {
		return a, false, errors.Wrapf(ErrMalformedRow, "annotation index %q", row[indexColumn])
	}

	s, err := span.Parse(row[spanColumn])
	if err != nil {
		return a, false, errors.Wrapf(err, "annotation #%d", index)
	}

	a = Annotation{
		Index: index,
		Span:  s,
		Kind:  row[l.TypeColumn],
	}

	if len(row) <= l.PropertiesColumn {
		return a, true, nil
	}

	props, err := ParseProperties(row[l.PropertiesColumn])
	if err != nil {
		return Annotation{}, false, errors.Wrapf(err, "annotation #%d", index)
	}
	a.Properties = props

	if sentence, found := EnclosingSentence(a.Span, sentences); found {
		a.Sentence = &sentence
	}

	return a, true, nil
}

// EnclosingSentence returns the first sentence, in document order, that
// contains s. Overlapping sentences are not reported: the first match wins.
func EnclosingSentence(s span.Span, sentences []span.Span) (span.Span, bool) {
	for _, sentence := range sentences {
		if sentence.Contains(s) {
			return sentence, true
		}
	}
	return span.Span{}, false
}
