package adapters

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alertiq/sales-atlas/pkg/models/domain"
	"github.com/alertiq/sales-atlas/pkg/models/store"
)

func MapStoreOrderLineToDomain(record store.OrderLine) (domain.OrderLine, error) {
	price, err := decimal.NewFromString(record.UnitPrice)
	if err != nil {
		return domain.OrderLine{}, fmt.Errorf("parse unit price %q for record %s: %w", record.UnitPrice, record.ID, err)
	}
	return domain.OrderLine{
		Date:      domain.Day(record.Date),
		Product:   record.Product,
		Quantity:  record.Quantity,
		UnitPrice: price,
	}, nil
}

func MapStoreOrderLinesToDomain(records []store.OrderLine) ([]domain.OrderLine, error) {
	lines := make([]domain.OrderLine, 0, len(records))
	for _, r := range records {
		line, err := MapStoreOrderLineToDomain(r)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// MapDomainOrderLineToStore persists a line under a caller-supplied ID.
// IDs must be stable across re-fetches so overlapping syncs replace rather
// than duplicate.
func MapDomainOrderLineToStore(id string, line domain.OrderLine) store.OrderLine {
	return store.OrderLine{
		ID:        id,
		Date:      domain.Day(line.Date),
		Product:   line.Product,
		Quantity:  line.Quantity,
		UnitPrice: line.UnitPrice.String(),
	}
}
