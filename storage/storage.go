package storage

import (
	"context"

	"github.com/revelaction/mpqa/document"
)

// CorpusReader loads a whole corpus.
type CorpusReader interface {
	// Version returns the corpus version tag, which selects the file layout.
	Version() string

	// Load builds every document that has both annotation files. The callback
	// is called once per document visited (total, title).
	Load(ctx context.Context, cb func(total int, name string)) (document.Corpus, error)
}

// DocRecord is the stored metadata of an exported document.
type DocRecord struct {
	Id      int
	Title   string
	Version string
}

// ViewWriter persists the views of a document.
type ViewWriter interface {
	// Write stores all three views of doc, replacing a previous export of the
	// same document title.
	Write(version string, doc document.Doc) error
}

// ViewReader reads back exported views.
type ViewReader interface {
	// List returns the exported documents ordered by title.
	List() ([]DocRecord, error)

	Subjectivity(docId int) ([]document.SentenceLabel, error)
	AttitudeTargets(docId int) ([]document.AttitudeTarget, error)
	EntitySentiments(docId int) ([]document.EntitySentiment, error)
}

// ViewRepository combines read and write operations
type ViewRepository interface {
	ViewReader
	ViewWriter
}
