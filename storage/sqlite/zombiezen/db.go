package zombiezen

import (
	"fmt"
	"runtime"

	"github.com/cockroachdb/errors"
	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool opens a connection pool on the database file at dbPath, one
// connection per CPU. The file is created if it does not exist.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	pool, err := sqlitex.NewPool(fmt.Sprintf("file:%s", dbPath), sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open database %s", dbPath)
	}
	return pool, nil
}
