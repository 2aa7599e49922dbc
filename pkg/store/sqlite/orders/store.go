package orders

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alertiq/sales-atlas/pkg/models/store"
)

const dateLayout = "2006-01-02"

// Store persists fetched order lines and reads them back by date range.
type Store interface {
	Add(ctx context.Context, records []store.OrderLine) error
	// GetRange returns lines with from <= date <= to, oldest first.
	GetRange(ctx context.Context, from, to time.Time) ([]store.OrderLine, error)
}

type orderStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &orderStore{db: db}, nil
}

func (s *orderStore) Add(ctx context.Context, records []store.OrderLine) error {
	if len(records) == 0 {
		return nil
	}

	// Lines are re-fetched on overlapping runs; replacing by ID keeps the
	// cache idempotent.
	query := `
		INSERT OR REPLACE INTO order_lines (id, date, product, quantity, unit_price)
		VALUES (?, ?, ?, ?, ?)`

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		_, err = stmt.ExecContext(ctx,
			record.ID,
			record.Date.Format(dateLayout),
			record.Product,
			record.Quantity,
			record.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}

	return nil
}

func (s *orderStore) GetRange(ctx context.Context, from, to time.Time) ([]store.OrderLine, error) {
	query := `
		SELECT id, date, product, quantity, unit_price
		FROM order_lines
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC, id ASC
	`
	rows, err := s.db.QueryContext(ctx, query, from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("query order lines: %w", err)
	}
	defer rows.Close()
	return scanOrderRows(rows)
}

func scanOrderRows(rows *sql.Rows) ([]store.OrderLine, error) {
	records := make([]store.OrderLine, 0)
	for rows.Next() {
		var (
			id, dateRaw, product, unitPrice string
			quantity                        int
		)
		if err := rows.Scan(&id, &dateRaw, &product, &quantity, &unitPrice); err != nil {
			return nil, err
		}
		date, err := time.ParseInLocation(dateLayout, dateRaw, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", dateRaw, err)
		}
		records = append(records, store.OrderLine{
			ID:        id,
			Date:      date,
			Product:   product,
			Quantity:  quantity,
			UnitPrice: unitPrice,
		})
	}
	return records, rows.Err()
}
