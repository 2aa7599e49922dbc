package export

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alertiq/sales-atlas/pkg/models/domain"
)

func sampleReport() *domain.DailyReport {
	today := domain.NewSnapshot()
	today.Add("Mug", 5)
	today.Add("Poster", 2)

	return &domain.DailyReport{
		ID:          "rep-1",
		Date:        time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC),
		GeneratedAt: time.Date(2025, 6, 18, 7, 30, 0, 0, time.UTC),
		TodaySales:  today,
		Changes: []domain.ProductChange{
			{Product: "Mug", Kind: domain.ChangeUp, Percent: 25},
			{Product: "Poster", Kind: domain.ChangeNew},
		},
		TotalRevenue:   decimal.RequireFromString("56.00"),
		AverageValue:   domain.AverageValue{Available: true, Amount: decimal.RequireFromString("28.00")},
		OrderLineCount: 2,
		NewProduct:     domain.NewProduct{Found: true, Product: "Poster", Quantity: 2},
		StaleProducts:  []string{"Sticker"},
		RevenueTrend: []domain.DailyRevenue{
			{Date: time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC), Revenue: decimal.RequireFromString("41.00")},
			{Date: time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC), Revenue: decimal.RequireFromString("56.00")},
		},
		BestSelling:  []domain.ProductQuantity{{Product: "Mug", Quantity: 12}},
		LeastSelling: []domain.ProductQuantity{{Product: "Poster", Quantity: 2}},
		WeekOverWeek: domain.WeekComparison{
			Available:     true,
			DeltaPercent:  15,
			CurrentTotal:  decimal.RequireFromString("97.00"),
			PreviousTotal: decimal.RequireFromString("84.00"),
		},
		Recommendations: []domain.Recommendation{
			{Product: "Poster", Reason: `"Poster" just appeared in sales - consider boosting its visibility`},
		},
		WindowDays: 7,
		TrendDays:  7,
	}
}

func renderAll(t *testing.T, rep *domain.DailyReport) map[domain.ReportFormat]string {
	t.Helper()
	out := make(map[domain.ReportFormat]string)
	for _, format := range []domain.ReportFormat{domain.FormatText, domain.FormatMarkdown, domain.FormatHTML} {
		rendered, err := RenderString(rep, format)
		require.NoError(t, err, "format %s", format)
		out[format] = rendered
	}
	return out
}

func TestRenderAllFormatsSurfaceIdenticalValues(t *testing.T) {
	rendered := renderAll(t, sampleReport())

	// The markup differs but every numeric value must appear verbatim in
	// every format.
	values := []string{
		"2025-06-18",
		"56.00", "28.00",
		"▲ 25% vs yesterday",
		"▲ 15% vs previous week",
		"Poster (2 sold)",
		"41.00",
		"Sticker",
	}
	for format, out := range rendered {
		for _, v := range values {
			assert.Contains(t, out, v, "format %s missing %q", format)
		}
	}
}

func TestRenderSections(t *testing.T) {
	out, err := RenderString(sampleReport(), domain.FormatText)
	require.NoError(t, err)

	assert.Contains(t, out, "Key Insights")
	assert.Contains(t, out, "Today's Sales")
	assert.Contains(t, out, "Revenue Trend (last 7 days)")
	assert.Contains(t, out, "Best Sellers (last 7 days)")
	assert.Contains(t, out, "Slowest Sellers (last 7 days)")
	assert.Contains(t, out, "Recommendations")
	assert.Contains(t, out, "reports@alertiq.dev")
	assert.Contains(t, out, "new today")
}

func TestRenderNoData(t *testing.T) {
	rep := &domain.DailyReport{
		ID:          "rep-2",
		Date:        time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC),
		GeneratedAt: time.Date(2025, 6, 18, 7, 30, 0, 0, time.UTC),
		NoData:      true,
	}

	for format, out := range renderAll(t, rep) {
		assert.Contains(t, out, "No sales data for this date.", "format %s", format)
		assert.NotContains(t, out, "Key Insights", "format %s", format)
		assert.Contains(t, out, "reports@alertiq.dev", "format %s", format)
	}
}

func TestRenderSentinels(t *testing.T) {
	rep := sampleReport()
	rep.AverageValue = domain.AverageValue{}
	rep.WeekOverWeek = domain.WeekComparison{}
	rep.NewProduct = domain.NewProduct{}
	rep.StaleProducts = nil

	out, err := RenderString(rep, domain.FormatText)
	require.NoError(t, err)

	assert.Contains(t, out, "no orders recorded")
	assert.Contains(t, out, "no data from the previous week")
	assert.Contains(t, out, "All previously active products are still selling.")
	assert.NotContains(t, out, "New product:")
}

func TestRenderHTMLEscapesProductNames(t *testing.T) {
	rep := sampleReport()
	snap := domain.NewSnapshot()
	snap.Add("<script>alert(1)</script>", 1)
	rep.TodaySales = snap
	rep.Changes = []domain.ProductChange{{Product: "<script>alert(1)</script>", Kind: domain.ChangeNew}}

	out, err := RenderString(rep, domain.FormatHTML)
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>alert(1)</script>")
}

func TestForUnknownFormat(t *testing.T) {
	_, err := For(domain.ReportFormat("pdf"))
	assert.Error(t, err)
}
