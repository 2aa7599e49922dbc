package adapters

import (
	"github.com/alertiq/sales-atlas/pkg/models/api"
	"github.com/alertiq/sales-atlas/pkg/models/domain"
)

func MapDailyReportDomainToApi(rep *domain.DailyReport) api.DailyReport {
	out := api.DailyReport{
		ID:          rep.ID,
		Date:        rep.Date.Format("2006-01-02"),
		GeneratedAt: rep.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		NoData:      rep.NoData,
	}
	if rep.NoData {
		return out
	}

	changes := make(map[string]domain.ProductChange, len(rep.Changes))
	for _, c := range rep.Changes {
		changes[c.Product] = c
	}
	for _, p := range rep.TodaySales.Products() {
		sale := api.ProductSale{
			Product:  p,
			Quantity: rep.TodaySales.Quantity(p),
			Change:   string(changes[p].Kind),
		}
		if c := changes[p]; c.Kind != domain.ChangeNew {
			percent := c.Percent
			sale.Percent = &percent
		}
		out.Products = append(out.Products, sale)
	}

	out.TotalRevenue = rep.TotalRevenue.StringFixed(2)
	out.OrderLineCount = rep.OrderLineCount

	if rep.AverageValue.Available {
		avg := rep.AverageValue.Amount.StringFixed(2)
		out.AverageOrderValue = &avg
	}
	if rep.NewProduct.Found {
		out.NewProduct = &api.NewProduct{
			Product:  rep.NewProduct.Product,
			Quantity: rep.NewProduct.Quantity,
		}
	}
	out.StaleProducts = rep.StaleProducts

	for _, p := range rep.RevenueTrend {
		out.RevenueTrend = append(out.RevenueTrend, api.TrendPoint{
			Date:    p.Date.Format("2006-01-02"),
			Revenue: p.Revenue.StringFixed(2),
		})
	}
	for _, b := range rep.BestSelling {
		out.BestSelling = append(out.BestSelling, api.RankedProduct{Product: b.Product, Quantity: b.Quantity})
	}
	for _, l := range rep.LeastSelling {
		out.LeastSelling = append(out.LeastSelling, api.RankedProduct{Product: l.Product, Quantity: l.Quantity})
	}
	if rep.WeekOverWeek.Available {
		out.WeekOverWeek = &api.WeekComparison{
			DeltaPercent:  rep.WeekOverWeek.DeltaPercent,
			CurrentTotal:  rep.WeekOverWeek.CurrentTotal.StringFixed(2),
			PreviousTotal: rep.WeekOverWeek.PreviousTotal.StringFixed(2),
		}
	}
	for _, r := range rep.Recommendations {
		out.Recommendations = append(out.Recommendations, api.Recommendation{
			Product: r.Product,
			Reason:  r.Reason,
		})
	}

	return out
}
