// Package analytics holds the pure aggregation pass of the reporting
// pipeline: every function here is a side-effect-free computation over an
// in-memory slice of order lines and a reference date. Nothing is cached
// between calls and inputs are never mutated.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alertiq/sales-atlas/pkg/models/domain"
)

// SalesByProduct sums quantities per product for lines recorded exactly on
// the given date. Products with no matching lines are absent, not zero.
func SalesByProduct(lines []domain.OrderLine, date time.Time) *domain.Snapshot {
	snap := domain.NewSnapshot()
	for _, l := range lines {
		if domain.SameDay(l.Date, date) {
			snap.Add(l.Product, l.Quantity)
		}
	}
	return snap
}

// TotalRevenue sums quantity*price over lines on the date, rounded to two
// decimal places. Zero when nothing matches.
func TotalRevenue(lines []domain.OrderLine, date time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		if domain.SameDay(l.Date, date) {
			total = total.Add(l.Revenue())
		}
	}
	return total.Round(2)
}

// AverageOrderValue is the mean per-line revenue for the date. The result
// is tagged: an empty match set yields Available=false, which is distinct
// from a real 0.00 average.
func AverageOrderValue(lines []domain.OrderLine, date time.Time) domain.AverageValue {
	total := decimal.Zero
	count := 0
	for _, l := range lines {
		if domain.SameDay(l.Date, date) {
			total = total.Add(l.Revenue())
			count++
		}
	}
	if count == 0 {
		return domain.AverageValue{}
	}
	return domain.AverageValue{
		Available: true,
		Amount:    total.Div(decimal.NewFromInt(int64(count))).Round(2),
	}
}

// CountOrderLines counts lines recorded on the date. Each line item counts
// as one unit; no higher-level checkout identifier is modeled here, so this
// is a line count, not a distinct-order count.
func CountOrderLines(lines []domain.OrderLine, date time.Time) int {
	count := 0
	for _, l := range lines {
		if domain.SameDay(l.Date, date) {
			count++
		}
	}
	return count
}

// windowSnapshot totals quantity per product over the trailing window.
// The window is half-open in day offsets: a line at day d is included iff
// 0 <= date-d < windowDays, so the reference date counts and the day
// windowDays back does not.
func windowSnapshot(lines []domain.OrderLine, date time.Time, windowDays int) *domain.Snapshot {
	snap := domain.NewSnapshot()
	ref := domain.Day(date)
	for _, l := range lines {
		diff := int(ref.Sub(domain.Day(l.Date)).Hours() / 24)
		if diff >= 0 && diff < windowDays {
			snap.Add(l.Product, l.Quantity)
		}
	}
	return snap
}

// BestSelling ranks products by quantity over the trailing window,
// descending, truncated to topN. Ties keep first-encountered order.
func BestSelling(lines []domain.OrderLine, date time.Time, windowDays, topN int) []domain.ProductQuantity {
	snap := windowSnapshot(lines, date, windowDays)
	ranked := make([]domain.ProductQuantity, 0, snap.Len())
	for _, p := range snap.Products() {
		ranked = append(ranked, domain.ProductQuantity{Product: p, Quantity: snap.Quantity(p)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// LeastSelling ranks products ascending by windowed quantity, truncated to
// bottomN. Products whose windowed quantity is zero are skipped: a ranked
// "slowest seller" with no sales at all belongs to ProductsWithoutSales.
func LeastSelling(lines []domain.OrderLine, date time.Time, windowDays, bottomN int) []domain.ProductQuantity {
	snap := windowSnapshot(lines, date, windowDays)
	ranked := make([]domain.ProductQuantity, 0, snap.Len())
	for _, p := range snap.Products() {
		if q := snap.Quantity(p); q > 0 {
			ranked = append(ranked, domain.ProductQuantity{Product: p, Quantity: q})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity < ranked[j].Quantity
	})
	if len(ranked) > bottomN {
		ranked = ranked[:bottomN]
	}
	return ranked
}

// TopNewProduct finds products present today but absent yesterday and
// returns the one with the highest today-quantity, first-seen order
// breaking ties. Found=false when nothing new appeared, which is distinct
// from a new product that sold zero units.
func TopNewProduct(lines []domain.OrderLine, date time.Time) domain.NewProduct {
	today := SalesByProduct(lines, date)
	yesterday := SalesByProduct(lines, date.AddDate(0, 0, -1))

	best := domain.NewProduct{}
	for _, p := range today.Products() {
		if yesterday.Contains(p) {
			continue
		}
		q := today.Quantity(p)
		if !best.Found || q > best.Quantity {
			best = domain.NewProduct{Found: true, Product: p, Quantity: q}
		}
	}
	return best
}

// ProductsWithoutSales lists products that sold yesterday but have no
// matching line today, in yesterday's first-seen order. The check is
// presence-based: products that never appear in the data are never
// reported.
func ProductsWithoutSales(lines []domain.OrderLine, date time.Time) []string {
	today := SalesByProduct(lines, date)
	yesterday := SalesByProduct(lines, date.AddDate(0, 0, -1))

	stale := make([]string, 0)
	for _, p := range yesterday.Products() {
		if yesterday.Quantity(p) > 0 && today.Quantity(p) == 0 {
			stale = append(stale, p)
		}
	}
	return stale
}

// RevenueTrend returns total revenue for each of the trailing days ending
// at the reference date inclusive, ordered chronologically ascending.
func RevenueTrend(lines []domain.OrderLine, date time.Time, days int) []domain.DailyRevenue {
	trend := make([]domain.DailyRevenue, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := domain.Day(date).AddDate(0, 0, -i)
		trend = append(trend, domain.DailyRevenue{
			Date:    day,
			Revenue: TotalRevenue(lines, day),
		})
	}
	return trend
}

// weekStartOf returns the most recent weekStart on or before the date.
func weekStartOf(date time.Time, weekStart time.Weekday) time.Time {
	day := domain.Day(date)
	offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekOverWeek compares revenue of the current calendar week (week start
// through the reference date inclusive) against the prior full week. A
// prior week with exactly zero revenue yields Available=false; no division
// happens on that path.
func WeekOverWeek(lines []domain.OrderLine, date time.Time, weekStart time.Weekday) domain.WeekComparison {
	ref := domain.Day(date)
	currentStart := weekStartOf(date, weekStart)
	previousStart := currentStart.AddDate(0, 0, -7)

	current := decimal.Zero
	previous := decimal.Zero
	for _, l := range lines {
		day := domain.Day(l.Date)
		switch {
		case !day.Before(currentStart) && !day.After(ref):
			current = current.Add(l.Revenue())
		case !day.Before(previousStart) && day.Before(currentStart):
			previous = previous.Add(l.Revenue())
		}
	}

	if previous.IsZero() {
		return domain.WeekComparison{}
	}

	delta, _ := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Float64()
	return domain.WeekComparison{
		Available:     true,
		DeltaPercent:  delta,
		CurrentTotal:  current.Round(2),
		PreviousTotal: previous.Round(2),
	}
}
