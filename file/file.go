// Package file reads the raw pieces of an MPQA corpus from disk: document
// texts and tab separated annotation files.
package file

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/revelaction/mpqa/annotation"
	"github.com/revelaction/mpqa/layout"
	"github.com/revelaction/mpqa/logger"
	"github.com/revelaction/mpqa/span"
)

const (
	fieldDelimiter = '\t'
	spanColumn     = 1
)

// ReadText reads a whole document text.
func ReadText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "IO error")
	}
	return string(b), nil
}

// EachRow calls fn for every row of a tab separated file, with the 1-based
// line the row starts on. Blank lines are skipped. An error from fn stops the
// scan and is returned wrapped with the file position.
func EachRow(path string, fn func(row []string, line int) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "IO error")
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = fieldDelimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	for {
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "%s", path)
		}

		line, _ := r.FieldPos(0)
		if err := fn(row, line); err != nil {
			return errors.Wrapf(err, "%s:%d", path, line)
		}
	}
}

// ReadRows reads all rows of a tab separated file.
func ReadRows(path string) ([][]string, error) {
	var rows [][]string
	err := EachRow(path, func(row []string, _ int) error {
		rows = append(rows, row)
		return nil
	})
	return rows, err
}

// ReadSentences reads the sentence spans of a gatesentences file, one per row
// in document order.
func ReadSentences(path string) ([]span.Span, error) {
	var sentences []span.Span
	err := EachRow(path, func(row []string, _ int) error {
		if annotation.IsComment(row) {
			return nil
		}
		if len(row) <= spanColumn {
			return errors.Wrapf(annotation.ErrMalformedRow, "sentence row has %d fields", len(row))
		}

		s, err := span.Parse(row[spanColumn])
		if err != nil {
			return err
		}
		sentences = append(sentences, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sentences, nil
}

// ReadAnnotations parses every non comment row of a gateman annotation file
// and resolves enclosing sentences against sentences. Any malformed row fails
// the whole file.
func ReadAnnotations(path string, sentences []span.Span, l layout.Layout) (annotation.Annotations, error) {
	log := logger.ComponentLogger("file")
	log.Debugw("Parsing annotations", logger.FieldFile, path)

	var anns annotation.Annotations
	err := EachRow(path, func(row []string, _ int) error {
		a, ok, err := annotation.ParseRow(row, sentences, l)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if a.HasProperties() && a.Sentence == nil {
			log.Debugw("No enclosing sentence found for annotation",
				logger.FieldIndex, a.Index, logger.FieldKind, a.Kind, logger.FieldFile, path)
		}

		anns = append(anns, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return anns, nil
}
