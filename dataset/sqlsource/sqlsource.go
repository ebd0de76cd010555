// Package sqlsource adapts the teacher's per-dialect
// database/{mysql,postgres,mssql,sqlite3} adapters from "dump a DDL"
// to "scan rows into dataset records": a dataset source may be a live
// database table instead of a CSV/JSONL file, fixed to a plain
// `SELECT * FROM <table>` with no SQL parsing involved.
package sqlsource

import (
	"database/sql"
	"fmt"
)

// Row is one scanned row, column name to its text representation.
// NULL columns are omitted.
type Row map[string]string

// Source is the shared contract every dialect adapter implements.
type Source interface {
	Open() error
	Close() error
	FetchRows(table string) ([]Row, error)
}

// fetchRows runs `SELECT * FROM <table>` against db and scans every
// row generically via rows.Columns(), the same "no SQL parsing"
// approach every dialect adapter in this package shares. quote
// applies each dialect's identifier-quoting convention (backticks for
// MySQL, double quotes for Postgres/SQLite, brackets for mssql).
func fetchRows(db *sql.DB, table string, quote func(string) string) ([]Row, error) {
	query := fmt.Sprintf("SELECT * FROM %s", quote(table))
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("sqlsource: querying %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("sqlsource: reading columns of %s: %w", table, err)
	}

	var out []Row
	values := make([]sql.NullString, len(cols))
	scanArgs := make([]any, len(cols))
	for i := range values {
		scanArgs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, fmt.Errorf("sqlsource: scanning row of %s: %w", table, err)
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			if values[i].Valid {
				row[col] = values[i].String
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
