// Package stat aggregates corpus statistics.
package stat

import (
	"sort"

	"github.com/revelaction/mpqa/document"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumDocs        int
	NumSentences   int
	NumAnnotations int

	// AnnotationsPerKind counts annotations by their raw kind string.
	AnnotationsPerKind map[string]int

	// NumNoProperties counts rows without a property field.
	NumNoProperties int

	// NumUnresolved counts annotations with properties but no enclosing sentence.
	NumUnresolved int

	NumSubjective int
	NumObjective  int

	NumAttitudeTargets  int
	NumEntitySentiments int
}

// Kinds returns the annotation kinds in lexical order.
func (s Stats) Kinds() []string {
	kinds := make([]string, 0, len(s.AnnotationsPerKind))
	for k := range s.AnnotationsPerKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{AnnotationsPerKind: map[string]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds one document to the totals.
func (h *Handler) Aggregate(doc document.Doc) {
	h.stats.NumDocs++
	h.stats.NumSentences += len(doc.Sentences)
	h.stats.NumAnnotations += len(doc.Annotations)

	for _, a := range doc.Annotations {
		h.stats.AnnotationsPerKind[a.Kind]++
		if !a.HasProperties() {
			h.stats.NumNoProperties++
			continue
		}
		if a.Sentence == nil {
			h.stats.NumUnresolved++
		}
	}

	for row := range doc.Subjectivity() {
		if row.Label == document.LabelSubjective {
			h.stats.NumSubjective++
		} else {
			h.stats.NumObjective++
		}
	}

	for range doc.AttitudeTargets() {
		h.stats.NumAttitudeTargets++
	}

	for range doc.EntitySentiments() {
		h.stats.NumEntitySentiments++
	}
}
