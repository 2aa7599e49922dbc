package analytics

import "github.com/alertiq/sales-atlas/pkg/models/domain"

// Compare classifies every product sold today against yesterday's
// snapshot, in today's first-seen order. A product absent yesterday is
// tagged new before any division, so a zero-yesterday quantity can never
// reach the percentage math. Positive deltas are up, everything else down.
func Compare(today, yesterday *domain.Snapshot) []domain.ProductChange {
	changes := make([]domain.ProductChange, 0, today.Len())
	for _, p := range today.Products() {
		if !yesterday.Contains(p) || yesterday.Quantity(p) == 0 {
			changes = append(changes, domain.ProductChange{Product: p, Kind: domain.ChangeNew})
			continue
		}

		prev := yesterday.Quantity(p)
		delta := float64(today.Quantity(p)-prev) / float64(prev) * 100
		kind := domain.ChangeDown
		if delta > 0 {
			kind = domain.ChangeUp
		}
		changes = append(changes, domain.ProductChange{Product: p, Kind: kind, Percent: delta})
	}
	return changes
}
