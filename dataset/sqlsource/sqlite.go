package sqlsource

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLite is a dataset source backed by a local SQLite file, adapted
// from database/sqlite3/database.go's connection setup.
type SQLite struct {
	Path string
	db   *sql.DB
}

func NewSQLite(path string) *SQLite {
	return &SQLite{Path: path}
}

func (s *SQLite) Open() error {
	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return fmt.Errorf("sqlsource/sqlite: opening: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLite) FetchRows(table string) ([]Row, error) {
	return fetchRows(s.db, table, func(ident string) string {
		return fmt.Sprintf("%q", ident)
	})
}
