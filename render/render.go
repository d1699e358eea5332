// Package render writes view rows and documents for humans and for other
// programs.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/mpqa/document"
	"github.com/revelaction/mpqa/span"
)

var (
	Red       = "\033[1;31m"
	Green     = "\033[1;32m"
	Yellow    = "\033[0;33m"
	Gray      = "\033[0;37m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

// Renderer prints documents and view rows on a terminal.
type Renderer struct {
	W io.Writer

	HasColor bool

	// HasPrefix prints the row position before every line.
	HasPrefix bool
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{W: w}
}

// Doc prints every sentence of d with its subjectivity label.
func (r *Renderer) Doc(d document.Doc) {
	fmt.Fprintf(r.W, "📖 %s%s%s %d sentences, %d annotations\n",
		r.color(Grey256), d.Title(), r.color(Off), len(d.Sentences), len(d.Annotations))

	i := 0
	for row := range d.Subjectivity() {
		r.SentenceLabel(i, row)
		i++
	}
}

func (r *Renderer) SentenceLabel(i int, row document.SentenceLabel) {
	label := row.Label
	if row.Label == document.LabelSubjective {
		label = r.color(Red) + label + r.color(Off)
	} else {
		label = r.color(Gray) + label + r.color(Off)
	}

	fmt.Fprintf(r.W, "%s[%-10s] ✍  %s\n", r.prefix(i), label, oneLine(row.Sentence))
}

// AttitudeTarget prints the sentence with the attitude and its target
// highlighted.
func (r *Renderer) AttitudeTarget(i int, row document.AttitudeTarget) {
	text := r.Highlight(row.Sentence, []Mark{
		{Span: span.Span{Start: row.Start, End: row.End}, Color: Green256},
		{Span: span.Span{Start: row.TargetStart, End: row.TargetEnd}, Color: Yellow256},
	})

	fmt.Fprintf(r.W, "%s[%s %s] ✍  %s\n", r.prefix(i), row.AttitudeType, row.Intensity, oneLine(text))
}

// EntitySentiment prints the sentence with the entity highlighted.
func (r *Renderer) EntitySentiment(i int, row document.EntitySentiment) {
	text := r.Highlight(row.Sentence, []Mark{
		{Span: span.Span{Start: row.Start, End: row.End}, Color: Yellow256},
	})

	fmt.Fprintf(r.W, "%s[%s %s] 🏷  %s\n", r.prefix(i), row.AttitudeType, row.Intensity, oneLine(text))
}

// Mark colors a span of a sentence.
type Mark struct {
	Span  span.Span
	Color string
}

// Highlight wraps the marked spans of text in their colors. Offsets count
// characters. Overlapping marks are drawn in order, an inner mark taking
// over until its end.
func (r *Renderer) Highlight(text string, marks []Mark) string {
	if !r.HasColor {
		return text
	}

	runes := []rune(text)
	var str strings.Builder
	for i, c := range runes {
		for _, m := range marks {
			if m.Span.Start == i {
				str.WriteString(m.Color)
			}
		}
		str.WriteRune(c)
		for _, m := range marks {
			if m.Span.End == i+1 {
				str.WriteString(Off)
			}
		}
	}

	return str.String()
}

func (r *Renderer) prefix(i int) string {
	if !r.HasPrefix {
		return ""
	}
	return fmt.Sprintf("%3d ", i)
}

func (r *Renderer) color(c string) string {
	if !r.HasColor {
		return ""
	}
	return c
}

// NextPrefix toggles the row position prefix.
func (r *Renderer) NextPrefix() {
	r.HasPrefix = !r.HasPrefix
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
