// Package document binds a raw MPQA document text to its sentence spans and
// opinion annotations, and projects that annotation graph into row views.
package document

import (
	"path"

	"github.com/revelaction/mpqa/annotation"
	"github.com/revelaction/mpqa/span"
)

// Doc is one corpus document. It is built once while loading the corpus and
// never modified afterwards.
type Doc struct {
	Id int `json:"id"`

	// Parent and Name locate the document under docs/ of the corpus root.
	Parent string `json:"parent"`
	Name   string `json:"name"`

	// Filename is the annotation file path, used in diagnostics only.
	Filename string `json:"filename"`

	Text string `json:"-"`

	// Sentences is in document order, which is also the tie break order of
	// enclosing sentence resolution.
	Sentences []span.Span `json:"sentences"`

	Annotations annotation.Annotations `json:"annotations"`

	runes []rune
}

// New assembles a Doc. Offsets in spans count characters, not bytes.
func New(text string, sentences []span.Span, anns annotation.Annotations, filename string) Doc {
	return Doc{
		Filename:    filename,
		Text:        text,
		Sentences:   sentences,
		Annotations: anns,
		runes:       []rune(text),
	}
}

// Title is the parent/name path of the document.
func (d Doc) Title() string {
	return path.Join(d.Parent, d.Name)
}

// Slice returns the document text covered by s.
func (d Doc) Slice(s span.Span) string {
	if d.runes == nil {
		return s.Text([]rune(d.Text))
	}
	return s.Text(d.runes)
}

// Library is a collection of Doc
type Library []Doc

// Names returns the titles of all documents, in library order.
func (l Library) Names() []string {
	names := make([]string, len(l))
	for i, d := range l {
		names[i] = d.Title()
	}
	return names
}

// Doc returns the document with the given title.
func (l Library) Doc(title string) (Doc, bool) {
	for _, d := range l {
		if d.Title() == title {
			return d, true
		}
	}
	return Doc{}, false
}

// Corpus is a versioned set of documents.
type Corpus struct {
	Version string  `json:"version"`
	Docs    Library `json:"docs"`
}
