package zombiezen

import (
	"context"

	"github.com/cockroachdb/errors"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/mpqa/document"
	"github.com/revelaction/mpqa/storage"
)

// ErrDocNotFound is returned when reading views of an unknown document id.
var ErrDocNotFound = errors.New("doc not found")

// ViewStore keeps the three row views of exported documents.
type ViewStore struct {
	pool *sqlitex.Pool
}

var _ storage.ViewRepository = (*ViewStore)(nil)

func NewViewStore(pool *sqlitex.Pool) *ViewStore {
	return &ViewStore{pool: pool}
}

// Write stores every view row of doc in one transaction. A previous export
// with the same title is replaced.
func (s *ViewStore) Write(version string, doc document.Doc) (err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	if err = deleteDoc(conn, doc.Title()); err != nil {
		return err
	}

	err = sqlitex.Execute(conn, "INSERT INTO docs (title, version) VALUES (?, ?)", &sqlitex.ExecOptions{
		Args: []any{doc.Title(), version},
	})
	if err != nil {
		return errors.Wrapf(err, "insert doc %s", doc.Title())
	}
	docId := conn.LastInsertRowID()

	pos := 0
	for row := range doc.Subjectivity() {
		err = sqlitex.Execute(conn, "INSERT INTO subjectivity (doc_id, position, sentence, label) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []any{docId, pos, row.Sentence, row.Label},
		})
		if err != nil {
			return errors.Wrap(err, "insert subjectivity row")
		}
		pos++
	}

	pos = 0
	for row := range doc.AttitudeTargets() {
		err = sqlitex.Execute(conn, `INSERT INTO attitude_targets
			(doc_id, position, span_start, span_end, text, attitude_type, intensity, target_start, target_end, target_text, sentence)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, &sqlitex.ExecOptions{
			Args: []any{docId, pos, row.Start, row.End, row.Text, row.AttitudeType, row.Intensity,
				row.TargetStart, row.TargetEnd, row.TargetText, row.Sentence},
		})
		if err != nil {
			return errors.Wrap(err, "insert attitude target row")
		}
		pos++
	}

	pos = 0
	for row := range doc.EntitySentiments() {
		err = sqlitex.Execute(conn, `INSERT INTO entity_sentiments
			(doc_id, position, span_start, span_end, text, intensity, attitude_type, sentence)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`, &sqlitex.ExecOptions{
			Args: []any{docId, pos, row.Start, row.End, row.Text, row.Intensity, row.AttitudeType, row.Sentence},
		})
		if err != nil {
			return errors.Wrap(err, "insert entity sentiment row")
		}
		pos++
	}

	return nil
}

func deleteDoc(conn *sqlite.Conn, title string) error {
	var ids []int64
	err := sqlitex.Execute(conn, "SELECT id FROM docs WHERE title = ?", &sqlitex.ExecOptions{
		Args: []any{title},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			ids = append(ids, stmt.ColumnInt64(0))
			return nil
		},
	})
	if err != nil {
		return err
	}

	for _, id := range ids {
		for _, table := range []string{"subjectivity", "attitude_targets", "entity_sentiments"} {
			if err := sqlitex.Execute(conn, "DELETE FROM "+table+" WHERE doc_id = ?", &sqlitex.ExecOptions{
				Args: []any{id},
			}); err != nil {
				return errors.Wrapf(err, "delete %s of doc %d", table, id)
			}
		}
		if err := sqlitex.Execute(conn, "DELETE FROM docs WHERE id = ?", &sqlitex.ExecOptions{
			Args: []any{id},
		}); err != nil {
			return errors.Wrapf(err, "delete doc %d", id)
		}
	}
	return nil
}

func (s *ViewStore) List() ([]storage.DocRecord, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var docs []storage.DocRecord
	err = sqlitex.Execute(conn, "SELECT id, title, version FROM docs ORDER BY title", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			docs = append(docs, storage.DocRecord{
				Id:      stmt.ColumnInt(0),
				Title:   stmt.ColumnText(1),
				Version: stmt.ColumnText(2),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *ViewStore) Subjectivity(docId int) ([]document.SentenceLabel, error) {
	var rows []document.SentenceLabel
	err := s.read(docId, "SELECT sentence, label FROM subjectivity WHERE doc_id = ? ORDER BY position",
		func(stmt *sqlite.Stmt) {
			rows = append(rows, document.SentenceLabel{
				Sentence: stmt.ColumnText(0),
				Label:    stmt.ColumnText(1),
			})
		})
	return rows, err
}

func (s *ViewStore) AttitudeTargets(docId int) ([]document.AttitudeTarget, error) {
	var rows []document.AttitudeTarget
	err := s.read(docId, `SELECT span_start, span_end, text, attitude_type, intensity, target_start, target_end, target_text, sentence
		FROM attitude_targets WHERE doc_id = ? ORDER BY position`,
		func(stmt *sqlite.Stmt) {
			rows = append(rows, document.AttitudeTarget{
				Start:        stmt.ColumnInt(0),
				End:          stmt.ColumnInt(1),
				Text:         stmt.ColumnText(2),
				AttitudeType: stmt.ColumnText(3),
				Intensity:    stmt.ColumnText(4),
				TargetStart:  stmt.ColumnInt(5),
				TargetEnd:    stmt.ColumnInt(6),
				TargetText:   stmt.ColumnText(7),
				Sentence:     stmt.ColumnText(8),
			})
		})
	return rows, err
}

func (s *ViewStore) EntitySentiments(docId int) ([]document.EntitySentiment, error) {
	var rows []document.EntitySentiment
	err := s.read(docId, `SELECT span_start, span_end, text, intensity, attitude_type, sentence
		FROM entity_sentiments WHERE doc_id = ? ORDER BY position`,
		func(stmt *sqlite.Stmt) {
			rows = append(rows, document.EntitySentiment{
				Start:        stmt.ColumnInt(0),
				End:          stmt.ColumnInt(1),
				Text:         stmt.ColumnText(2),
				Intensity:    stmt.ColumnText(3),
				AttitudeType: stmt.ColumnText(4),
				Sentence:     stmt.ColumnText(5),
			})
		})
	return rows, err
}

// read runs a per document query after checking that the document exists.
func (s *ViewStore) read(docId int, query string, scan func(stmt *sqlite.Stmt)) error {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	found := false
	err = sqlitex.Execute(conn, "SELECT 1 FROM docs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []any{docId},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			return nil
		},
	})
	if err != nil {
		return err
	}
	if !found {
		return errors.Wrapf(ErrDocNotFound, "id %d", docId)
	}

	return sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: []any{docId},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			scan(stmt)
			return nil
		},
	})
}
