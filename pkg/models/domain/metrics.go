package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot maps product names to summed quantities for a single date or
// window. It preserves the order products were first encountered in, which
// is the tie-break order everywhere quantities compare equal. Snapshots are
// built fresh per report and never mutated after being returned.
type Snapshot struct {
	totals map[string]int
	order  []string
}

func NewSnapshot() *Snapshot {
	return &Snapshot{totals: make(map[string]int)}
}

// Add accumulates quantity for a product, remembering first-seen order.
func (s *Snapshot) Add(product string, quantity int) {
	if _, seen := s.totals[product]; !seen {
		s.order = append(s.order, product)
	}
	s.totals[product] += quantity
}

// Quantity returns the summed quantity for a product; zero when absent.
func (s *Snapshot) Quantity(product string) int {
	return s.totals[product]
}

// Contains reports whether the product has at least one matching record.
func (s *Snapshot) Contains(product string) bool {
	_, ok := s.totals[product]
	return ok
}

// Products returns product names in first-encountered order.
func (s *Snapshot) Products() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Snapshot) Len() int {
	return len(s.totals)
}

// ProductQuantity is one entry of a ranked seller list.
type ProductQuantity struct {
	Product  string
	Quantity int
}

// ChangeKind classifies a product's movement versus the prior day.
type ChangeKind string

const (
	ChangeNew  ChangeKind = "new"
	ChangeUp   ChangeKind = "up"
	ChangeDown ChangeKind = "down"
)

// ProductChange is the day-over-day classification for one product sold on
// the reference date. Percent is meaningless when Kind == ChangeNew.
type ProductChange struct {
	Product string
	Kind    ChangeKind
	Percent float64
}

// AverageValue is a tagged average-order-value result. Available is false
// when no lines matched the date; that case must never render as 0.00.
type AverageValue struct {
	Available bool
	Amount    decimal.Decimal
}

// WeekComparison compares the current calendar week (week start through the
// reference date) against the prior full week. Available is false when the
// prior week's revenue is exactly zero.
type WeekComparison struct {
	Available     bool
	DeltaPercent  float64
	CurrentTotal  decimal.Decimal
	PreviousTotal decimal.Decimal
}

// NewProduct is the top newly appearing product, if any.
type NewProduct struct {
	Found    bool
	Product  string
	Quantity int
}

// DailyRevenue is one point of the trailing revenue trend.
type DailyRevenue struct {
	Date    time.Time
	Revenue decimal.Decimal
}

// Recommendation is one actionable insight for the report.
type Recommendation struct {
	Product string
	Reason  string
}
