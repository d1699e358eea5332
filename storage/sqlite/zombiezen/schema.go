package zombiezen

import (
	"context"
	"embed"
	"path"

	"github.com/cockroachdb/errors"
	"zombiezen.com/go/sqlite/sqlitex"
)

const ViewsSchema = "views.sql"

//go:embed sql/*.sql
var sqlFiles embed.FS

// CreateSchemas runs the embedded script sql/<schemaName>. Scripts only use
// CREATE ... IF NOT EXISTS, so running one twice is harmless.
func CreateSchemas(pool *sqlitex.Pool, schemaName string) error {
	scriptPath := path.Join("sql", schemaName)

	script, err := sqlFiles.ReadFile(scriptPath)
	if err != nil {
		return errors.Wrapf(err, "read embedded sql file %s", scriptPath)
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return errors.Wrapf(err, "execute script %s", schemaName)
	}

	return nil
}
