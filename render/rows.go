package render

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"iter"

	"github.com/cockroachdb/errors"
)

const (
	FormatTSV  = "tsv"
	FormatJSON = "json"

	DefaultFormat = FormatTSV
)

// ErrUnsupportedFormat is returned by NewRowWriter for unknown formats.
var ErrUnsupportedFormat = errors.New("unsupported format")

func SupportedFormats() []string {
	return []string{FormatTSV, FormatJSON}
}

// Record is a view row with a fixed field order.
type Record interface {
	Fields() []string
}

// RowWriter serializes view rows.
type RowWriter interface {
	Write(r Record) error
	Flush() error
}

// NewRowWriter returns the writer for format.
func NewRowWriter(format string, w io.Writer) (RowWriter, error) {
	switch format {
	case FormatTSV:
		return NewTSVRenderer(w), nil
	case FormatJSON:
		return NewJSONRenderer(w), nil
	}
	return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
}

// NextFormat returns the format following current in SupportedFormats order.
func NextFormat(current string) string {
	supported := SupportedFormats()
	for i, format := range supported {
		if format == current {
			return supported[(i+1)%len(supported)]
		}
	}
	return DefaultFormat
}

// TSVRenderer writes one tab separated line per row. Fields holding tabs,
// quotes or newlines are quoted csv style.
type TSVRenderer struct {
	w *csv.Writer
}

var _ RowWriter = (*TSVRenderer)(nil)

func NewTSVRenderer(w io.Writer) *TSVRenderer {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return &TSVRenderer{w: cw}
}

func (r *TSVRenderer) Write(rec Record) error {
	return r.w.Write(rec.Fields())
}

func (r *TSVRenderer) Flush() error {
	r.w.Flush()
	return r.w.Error()
}

// JSONRenderer writes one JSON object per row.
type JSONRenderer struct {
	enc *json.Encoder
}

var _ RowWriter = (*JSONRenderer)(nil)

func NewJSONRenderer(w io.Writer) *JSONRenderer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONRenderer{enc: enc}
}

func (r *JSONRenderer) Write(rec Record) error {
	return r.enc.Encode(rec)
}

func (r *JSONRenderer) Flush() error {
	return nil
}

// Write writes every row of seq and returns how many were written. The
// caller flushes.
func Write[T Record](w RowWriter, seq iter.Seq[T]) (int, error) {
	n := 0
	for row := range seq {
		if err := w.Write(row); err != nil {
			return n, errors.Wrap(err, "write row")
		}
		n++
	}
	return n, nil
}
