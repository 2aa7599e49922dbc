// Package export renders an assembled daily report into its textual
// representations. All renderers share one pre-formatted view model, so the
// numbers a report surfaces are byte-identical across formats even though
// the markup differs.
package export

import (
	"fmt"

	"github.com/alertiq/sales-atlas/pkg/models/domain"
)

const contactFooter = "Questions about this report? reports@alertiq.dev"

type productRow struct {
	Product  string
	Quantity int
	Change   string
	Status   string
}

type trendPoint struct {
	Date    string
	Revenue string
}

type rankedRow struct {
	Product  string
	Quantity int
}

type reportView struct {
	ID          string
	Date        string
	GeneratedAt string
	NoData      bool

	Rows            []productRow
	TotalRevenue    string
	AverageValue    string
	OrderLineCount  int
	WeekOverWeek    string
	NewProduct      string
	StaleProducts   []string
	Trend           []trendPoint
	BestSelling     []rankedRow
	LeastSelling    []rankedRow
	Recommendations []string

	WindowDays int
	TrendDays  int
	Footer     string
}

func changeLabel(c domain.ProductChange) (change, status string) {
	switch c.Kind {
	case domain.ChangeNew:
		return "new today", "new"
	case domain.ChangeUp:
		return fmt.Sprintf("▲ %.0f%% vs yesterday", c.Percent), "up"
	default:
		return fmt.Sprintf("▼ %.0f%% vs yesterday", c.Percent), "down"
	}
}

// buildView flattens the metrics bundle into display strings. Sentinel
// cases (no orders, no prior week, no new product) become explanatory text
// here, never zeros.
func buildView(rep *domain.DailyReport) reportView {
	v := reportView{
		ID:          rep.ID,
		Date:        rep.Date.Format("2006-01-02"),
		GeneratedAt: rep.GeneratedAt.Format("2006-01-02 15:04:05"),
		NoData:      rep.NoData,
		WindowDays:  rep.WindowDays,
		TrendDays:   rep.TrendDays,
		Footer:      contactFooter,
	}
	if rep.NoData {
		return v
	}

	changes := make(map[string]domain.ProductChange, len(rep.Changes))
	for _, c := range rep.Changes {
		changes[c.Product] = c
	}
	for _, p := range rep.TodaySales.Products() {
		change, status := changeLabel(changes[p])
		v.Rows = append(v.Rows, productRow{
			Product:  p,
			Quantity: rep.TodaySales.Quantity(p),
			Change:   change,
			Status:   status,
		})
	}

	v.TotalRevenue = rep.TotalRevenue.StringFixed(2)
	v.OrderLineCount = rep.OrderLineCount

	if rep.AverageValue.Available {
		v.AverageValue = rep.AverageValue.Amount.StringFixed(2)
	} else {
		v.AverageValue = "no orders recorded"
	}

	if rep.WeekOverWeek.Available {
		arrow := "▼"
		if rep.WeekOverWeek.DeltaPercent > 0 {
			arrow = "▲"
		}
		v.WeekOverWeek = fmt.Sprintf("%s %.0f%% vs previous week", arrow, rep.WeekOverWeek.DeltaPercent)
	} else {
		v.WeekOverWeek = "no data from the previous week"
	}

	if rep.NewProduct.Found {
		v.NewProduct = fmt.Sprintf("%s (%d sold)", rep.NewProduct.Product, rep.NewProduct.Quantity)
	}

	v.StaleProducts = rep.StaleProducts

	for _, p := range rep.RevenueTrend {
		v.Trend = append(v.Trend, trendPoint{
			Date:    p.Date.Format("02.01"),
			Revenue: p.Revenue.StringFixed(2),
		})
	}
	for _, b := range rep.BestSelling {
		v.BestSelling = append(v.BestSelling, rankedRow{Product: b.Product, Quantity: b.Quantity})
	}
	for _, l := range rep.LeastSelling {
		v.LeastSelling = append(v.LeastSelling, rankedRow{Product: l.Product, Quantity: l.Quantity})
	}
	for _, r := range rep.Recommendations {
		v.Recommendations = append(v.Recommendations, r.Reason)
	}

	return v
}
