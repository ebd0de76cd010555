package sqlsource

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Postgres is a dataset source backed by a live PostgreSQL table,
// adapted from database/postgres/database.go's connection setup.
type Postgres struct {
	DSN string
	db  *sql.DB
}

func NewPostgres(user, password, host string, port int, dbName, sslMode string) *Postgres {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)
	return &Postgres{DSN: dsn}
}

func (p *Postgres) Open() error {
	db, err := sql.Open("postgres", p.DSN)
	if err != nil {
		return fmt.Errorf("sqlsource/postgres: opening: %w", err)
	}
	p.db = db
	return nil
}

func (p *Postgres) Close() error {
	if p.db == nil {
		return nil
	}
	return p.db.Close()
}

func (p *Postgres) FetchRows(table string) ([]Row, error) {
	return fetchRows(p.db, table, func(ident string) string {
		return fmt.Sprintf("%q", ident)
	})
}
