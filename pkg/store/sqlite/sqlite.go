// Package sqlite owns the local order cache database. Fetched order lines
// land here so report generation does not depend on the marketplace API
// being reachable.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const orderLinesSchema = `
	CREATE TABLE IF NOT EXISTS order_lines (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		product TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		unit_price TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_order_lines_date ON order_lines (date);
`

var bootQueries = []string{
	orderLinesSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite", settings.DbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// SQLite serializes writers anyway; a single pooled connection also
	// keeps :memory: databases coherent across calls.
	db.SetMaxOpenConns(1)

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			db.Close()
			return nil, fmt.Errorf("bootstrap schema: %w", err)
		}
	}

	return db, nil
}
