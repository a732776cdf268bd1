package engines

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/fastbench/fastbench"
)

func init() {
	register("sqlite", newSQLiteEngine)
}

// sqliteEngine answers each lookup with a single bounded range query
// over the key column's primary-key index, never a scan.
type sqliteEngine struct {
	db      *sql.DB
	stmt    *sql.Stmt
	dir     string
	ownsDir bool
}

func newSQLiteEngine(keys []int32, dataDir string) (Engine, error) {
	dir, owns, err := scratchDir(dataDir, "sqlite")
	if err != nil {
		return nil, fastbench.WrapError(fastbench.ErrConstruction, err)
	}
	e := &sqliteEngine{dir: dir, ownsDir: owns}

	e.db, err = sql.Open("sqlite", filepath.Join(dir, "bench.db"))
	if err != nil {
		return nil, e.fail(err)
	}
	// The driver is not safe for concurrent statements on one
	// connection; the harness is single-threaded anyway.
	e.db.SetMaxOpenConns(1)

	if _, err := e.db.Exec(`CREATE TABLE bench (key INTEGER PRIMARY KEY, idx INTEGER NOT NULL)`); err != nil {
		return nil, e.fail(err)
	}
	if _, err := e.db.Exec(`PRAGMA synchronous = OFF`); err != nil {
		return nil, e.fail(err)
	}

	tx, err := e.db.Begin()
	if err != nil {
		return nil, e.fail(err)
	}
	ins, err := tx.Prepare(`INSERT INTO bench (key, idx) VALUES (?, ?)`)
	if err != nil {
		tx.Rollback()
		return nil, e.fail(err)
	}
	for i, k := range keys {
		if _, err := ins.Exec(int64(k), int64(i)); err != nil {
			ins.Close()
			tx.Rollback()
			return nil, e.fail(err)
		}
	}
	ins.Close()
	if err := tx.Commit(); err != nil {
		return nil, e.fail(err)
	}

	e.stmt, err = e.db.Prepare(`SELECT idx FROM bench WHERE key <= ? ORDER BY key DESC LIMIT 1`)
	if err != nil {
		return nil, e.fail(err)
	}
	return e, nil
}

func (e *sqliteEngine) fail(err error) error {
	e.release()
	return fastbench.WrapError(fastbench.ErrConstruction, err)
}

func (e *sqliteEngine) Name() string { return "sqlite" }

func (e *sqliteEngine) Lookup(key int32) int64 {
	var idx int64
	err := e.stmt.QueryRow(int64(key)).Scan(&idx)
	if err != nil {
		return -1
	}
	return idx
}

func (e *sqliteEngine) Close() error {
	e.release()
	return nil
}

func (e *sqliteEngine) release() {
	if e.stmt != nil {
		e.stmt.Close()
		e.stmt = nil
	}
	if e.db != nil {
		e.db.Close()
		e.db = nil
	}
	if e.ownsDir && e.dir != "" {
		os.RemoveAll(e.dir)
		e.dir = ""
	}
}
