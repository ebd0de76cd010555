package sqlsource

import (
	"database/sql"
	"fmt"

	_ "github.com/denisenkom/go-mssqldb"
)

// MSSQL is a dataset source backed by a live SQL Server table,
// adapted from database/mssql/database.go's connection setup.
type MSSQL struct {
	DSN string
	db  *sql.DB
}

func NewMSSQL(user, password, host string, port int, dbName string) *MSSQL {
	dsn := fmt.Sprintf("server=%s;port=%d;user id=%s;password=%s;database=%s",
		host, port, user, password, dbName)
	return &MSSQL{DSN: dsn}
}

func (m *MSSQL) Open() error {
	db, err := sql.Open("sqlserver", m.DSN)
	if err != nil {
		return fmt.Errorf("sqlsource/mssql: opening: %w", err)
	}
	m.db = db
	return nil
}

func (m *MSSQL) Close() error {
	if m.db == nil {
		return nil
	}
	return m.db.Close()
}

func (m *MSSQL) FetchRows(table string) ([]Row, error) {
	return fetchRows(m.db, table, func(ident string) string {
		return fmt.Sprintf("[%s]", ident)
	})
}
