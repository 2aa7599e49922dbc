package domain

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// OrderLine is one product/quantity/price row from a single checkout.
// Date carries calendar-day precision only; use Day to normalize before
// comparing.
type OrderLine struct {
	Date      time.Time       `json:"date" validate:"required"`
	Product   string          `json:"product" validate:"required"`
	Quantity  int             `json:"quantity" validate:"gte=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Revenue is the line's revenue contribution (quantity * unit price).
func (l OrderLine) Revenue() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Validate checks the caller contract for a single line. Violations abort
// report generation entirely; rows are never silently skipped or coerced.
func (l OrderLine) Validate() error {
	if err := validate.Struct(l); err != nil {
		return fmt.Errorf("invalid order line: %w", err)
	}
	if l.UnitPrice.IsNegative() {
		return fmt.Errorf("invalid order line: unit_price %s is negative", l.UnitPrice)
	}
	return nil
}

// ValidateOrderLines verifies every line, naming the first offending record.
func ValidateOrderLines(lines []OrderLine) error {
	for i, l := range lines {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("record %d (product %q): %w", i, l.Product, err)
		}
	}
	return nil
}

// Day truncates a timestamp to its calendar date in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two timestamps fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}
