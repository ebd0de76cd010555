package sqlsource

import (
	"database/sql"
	"fmt"

	driver "github.com/go-sql-driver/mysql"
)

// MySQL is a dataset source backed by a live MySQL table, adapted
// from database/mysql/database.go's connection setup.
type MySQL struct {
	DSN string
	db  *sql.DB
}

// NewMySQL builds a MySQL source from discrete connection fields,
// mirroring mysqlBuildDSN's field set.
func NewMySQL(user, password, host string, port int, dbName string) *MySQL {
	c := driver.NewConfig()
	c.User = user
	c.Passwd = password
	c.DBName = dbName
	c.Net = "tcp"
	c.Addr = fmt.Sprintf("%s:%d", host, port)
	return &MySQL{DSN: c.FormatDSN()}
}

func (m *MySQL) Open() error {
	db, err := sql.Open("mysql", m.DSN)
	if err != nil {
		return fmt.Errorf("sqlsource/mysql: opening: %w", err)
	}
	m.db = db
	return nil
}

func (m *MySQL) Close() error {
	if m.db == nil {
		return nil
	}
	return m.db.Close()
}

func (m *MySQL) FetchRows(table string) ([]Row, error) {
	return fetchRows(m.db, table, func(ident string) string {
		return fmt.Sprintf("`%s`", ident)
	})
}
