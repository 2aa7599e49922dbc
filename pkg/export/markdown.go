package export

import (
	"fmt"
	"io"
	"text/template"

	"github.com/alertiq/sales-atlas/pkg/models/domain"
)

// MarkdownRenderer produces the Markdown layout: same sections and values
// as the text layout, with pipe tables instead of aligned columns.
type MarkdownRenderer struct{}

func NewMarkdownRenderer() *MarkdownRenderer { return &MarkdownRenderer{} }

func (r *MarkdownRenderer) Format() domain.ReportFormat { return domain.FormatMarkdown }

func (r *MarkdownRenderer) Render(w io.Writer, rep *domain.DailyReport) error {
	tmpl := `# AlertIQ Daily Sales Report ({{.Date}})

_Generated: {{.GeneratedAt}}_
{{if .NoData}}
No sales data for this date.

{{.Footer}}
{{else}}
## Key Insights

- Weekly trend: {{.WeekOverWeek}}
{{if .NewProduct}}- New product: {{.NewProduct}}
{{end}}{{if .StaleProducts}}- Stopped selling: {{range $i, $p := .StaleProducts}}{{if $i}}, {{end}}{{$p}}{{end}}
{{else}}- All previously active products are still selling.
{{end}}
## Today's Sales

| Product | Qty | Change | Status |
|---------|----:|--------|--------|
{{range .Rows}}| {{.Product}} | {{.Quantity}} | {{.Change}} | {{.Status}} |
{{end}}
## Totals

- Total revenue: **{{.TotalRevenue}}**
- Average order value: {{.AverageValue}}
- Order lines: {{.OrderLineCount}}

## Revenue Trend (last {{.TrendDays}} days)

{{range .Trend}}- {{.Date}}: {{.Revenue}}
{{end}}
## Best Sellers (last {{.WindowDays}} days)

{{range .BestSelling}}- {{.Product}}: {{.Quantity}} pcs
{{end}}
## Slowest Sellers (last {{.WindowDays}} days)

{{range .LeastSelling}}- {{.Product}}: {{.Quantity}} pcs
{{end}}
## Recommendations

{{range .Recommendations}}- {{.}}
{{end}}
{{.Footer}}
{{end}}`

	t, err := template.New("markdown").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse markdown template: %w", err)
	}
	return t.Execute(w, buildView(rep))
}
