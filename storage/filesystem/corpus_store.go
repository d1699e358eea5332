package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/revelaction/mpqa/document"
	"github.com/revelaction/mpqa/file"
	"github.com/revelaction/mpqa/layout"
	"github.com/revelaction/mpqa/logger"
	"github.com/revelaction/mpqa/storage"
)

const (
	docsDir        = "docs"
	annotationsDir = "man_anns"
)

// Entry locates one document text under docs/<Parent>/<Name>.
type Entry struct {
	Parent string
	Name   string
}

func (e Entry) Title() string {
	return e.Parent + "/" + e.Name
}

// CorpusStore reads an MPQA corpus directory:
//
//	<root>/docs/<parent>/<name>
//	<root>/man_anns/<parent>/<name>/gatesentences.mpqa.<version>
//	<root>/man_anns/<parent>/<name>/gateman.mpqa.lre.<version>
//
// The version comes from the last three characters of root.
type CorpusStore struct {
	root    string
	layout  layout.Layout
	entries []Entry
	workers int
	log     *zap.SugaredLogger
}

var _ storage.CorpusReader = (*CorpusStore)(nil)

// NewCorpusStore discovers the documents of the corpus at root. Parents and
// names are visited in lexical order.
func NewCorpusStore(root string) (*CorpusStore, error) {
	parents, err := os.ReadDir(filepath.Join(root, docsDir))
	if err != nil {
		return nil, errors.Wrapf(err, "corpus %s", root)
	}

	var entries []Entry
	for _, parent := range parents {
		if !parent.IsDir() {
			continue
		}

		files, err := os.ReadDir(filepath.Join(root, docsDir, parent.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "corpus %s", root)
		}

		for _, f := range files {
			if f.IsDir() {
				continue
			}
			entries = append(entries, Entry{Parent: parent.Name(), Name: f.Name()})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Parent != entries[j].Parent {
			return entries[i].Parent < entries[j].Parent
		}
		return entries[i].Name < entries[j].Name
	})

	version := layout.Version(root)
	return &CorpusStore{
		root:    root,
		layout:  layout.For(version),
		entries: entries,
		workers: runtime.NumCPU(),
		log:     logger.ComponentLogger("corpus").With(logger.FieldCorpus, root, logger.FieldVersion, version),
	}, nil
}

// WithWorkers sets how many documents are loaded concurrently.
func (s *CorpusStore) WithWorkers(n int) *CorpusStore {
	if n > 0 {
		s.workers = n
	}
	return s
}

// WithParent keeps only the documents whose parent directory contains match.
func (s *CorpusStore) WithParent(match string) *CorpusStore {
	if match == "" {
		return s
	}

	var kept []Entry
	for _, e := range s.entries {
		if strings.Contains(e.Parent, match) {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	return s
}

func (s *CorpusStore) Version() string {
	return s.layout.Version
}

// Entries returns the discovered document locations.
func (s *CorpusStore) Entries() []Entry {
	return s.entries
}

// Read builds one document. ok is false, with no error, when either
// annotation file is missing.
func (s *CorpusStore) Read(e Entry) (doc document.Doc, ok bool, err error) {
	docPath := filepath.Join(s.root, docsDir, e.Parent, e.Name)
	annDir := filepath.Join(s.root, annotationsDir, e.Parent, e.Name)
	sentencePath := filepath.Join(annDir, s.layout.SentenceFile())
	annotationPath := filepath.Join(annDir, s.layout.AnnotationFile())

	if !exists(sentencePath) || !exists(annotationPath) {
		s.log.Debugw("Annotation files do not exist", logger.FieldFile, docPath)
		return document.Doc{}, false, nil
	}

	text, err := file.ReadText(docPath)
	if err != nil {
		return document.Doc{}, false, errors.Wrapf(err, "document %s", docPath)
	}

	sentences, err := file.ReadSentences(sentencePath)
	if err != nil {
		return document.Doc{}, false, err
	}

	anns, err := file.ReadAnnotations(annotationPath, sentences, s.layout)
	if err != nil {
		return document.Doc{}, false, err
	}

	doc = document.New(text, sentences, anns, annotationPath)
	doc.Parent = e.Parent
	doc.Name = e.Name
	return doc, true, nil
}

// Load reads all documents, s.workers at a time, and returns them in
// discovery order with sequential ids. The first failing document aborts the
// load.
func (s *CorpusStore) Load(ctx context.Context, cb func(total int, name string)) (document.Corpus, error) {
	total := len(s.entries)
	loaded := make([]*document.Doc, total)

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, e := range s.entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			doc, ok, err := s.Read(e)
			if err != nil {
				return err
			}
			if ok {
				loaded[i] = &doc
			}

			if cb != nil {
				mu.Lock()
				cb(total, e.Title())
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return document.Corpus{}, err
	}

	corpus := document.Corpus{Version: s.layout.Version, Docs: document.Library{}}
	for _, doc := range loaded {
		if doc == nil {
			continue
		}
		doc.Id = len(corpus.Docs)
		corpus.Docs = append(corpus.Docs, *doc)
	}

	s.log.Debugw("Corpus loaded", logger.FieldCount, len(corpus.Docs))
	return corpus, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
