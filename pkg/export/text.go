package export

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/alertiq/sales-atlas/pkg/models/domain"
)

type TableConfig struct {
	ProductWidth  int
	QuantityWidth int
	ChangeWidth   int
	StatusWidth   int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		ProductWidth:  32,
		QuantityWidth: 8,
		ChangeWidth:   24,
		StatusWidth:   6,
	}
}

// TextRenderer produces the plain-text layout with an aligned product
// table, in the style of a terminal report.
type TextRenderer struct {
	config TableConfig
}

func NewTextRenderer() *TextRenderer {
	return &TextRenderer{config: DefaultTableConfig()}
}

func (r *TextRenderer) Format() domain.ReportFormat { return domain.FormatText }

func (r *TextRenderer) Render(w io.Writer, rep *domain.DailyReport) error {
	funcMap := template.FuncMap{
		"formatRow": func(product string, quantity interface{}, change, status string) string {
			return fmt.Sprintf("| %-*s | %*v | %-*s | %-*s |",
				r.config.ProductWidth, product,
				r.config.QuantityWidth, quantity,
				r.config.ChangeWidth, change,
				r.config.StatusWidth, status)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", r.config.ProductWidth+2),
				strings.Repeat("-", r.config.QuantityWidth+2),
				strings.Repeat("-", r.config.ChangeWidth+2),
				strings.Repeat("-", r.config.StatusWidth+2))
		},
	}

	tmpl := `AlertIQ Daily Sales Report ({{.Date}})
Generated: {{.GeneratedAt}}
{{if .NoData}}
No sales data for this date.

{{.Footer}}
{{else}}
=== Key Insights ===
Weekly trend: {{.WeekOverWeek}}
{{if .NewProduct}}New product: {{.NewProduct}}
{{end}}{{if .StaleProducts}}Stopped selling: {{range $i, $p := .StaleProducts}}{{if $i}}, {{end}}{{$p}}{{end}}
{{else}}All previously active products are still selling.
{{end}}
=== Today's Sales ===
{{separator}}
{{formatRow "Product" "Qty" "Change" "Status"}}
{{separator}}
{{range .Rows}}{{formatRow .Product .Quantity .Change .Status}}
{{end}}{{separator}}

=== Totals ===
Total revenue: {{.TotalRevenue}}
Average order value: {{.AverageValue}}
Order lines: {{.OrderLineCount}}

=== Revenue Trend (last {{.TrendDays}} days) ===
{{range .Trend}}{{.Date}}: {{.Revenue}}
{{end}}
=== Best Sellers (last {{.WindowDays}} days) ===
{{range .BestSelling}}{{.Product}}: {{.Quantity}} pcs
{{end}}
=== Slowest Sellers (last {{.WindowDays}} days) ===
{{range .LeastSelling}}{{.Product}}: {{.Quantity}} pcs
{{end}}
=== Recommendations ===
{{range .Recommendations}}- {{.}}
{{end}}
{{.Footer}}
{{end}}`

	t, err := template.New("text").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse text template: %w", err)
	}
	return t.Execute(w, buildView(rep))
}
