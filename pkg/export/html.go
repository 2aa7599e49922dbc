package export

import (
	"fmt"
	"html/template"
	"io"

	"github.com/alertiq/sales-atlas/pkg/models/domain"
)

// HTMLRenderer produces a self-contained HTML document suitable for an
// email body. No external resources are referenced.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer { return &HTMLRenderer{} }

func (r *HTMLRenderer) Format() domain.ReportFormat { return domain.FormatHTML }

func (r *HTMLRenderer) Render(w io.Writer, rep *domain.DailyReport) error {
	tmpl := `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>AlertIQ Daily Sales Report ({{.Date}})</title>
</head>
<body>
<h1>AlertIQ Daily Sales Report ({{.Date}})</h1>
<p><em>Generated: {{.GeneratedAt}}</em></p>
{{if .NoData}}
<p>No sales data for this date.</p>
<p>{{.Footer}}</p>
{{else}}
<h2>Key Insights</h2>
<ul>
<li>Weekly trend: {{.WeekOverWeek}}</li>
{{if .NewProduct}}<li>New product: {{.NewProduct}}</li>
{{end}}{{if .StaleProducts}}<li>Stopped selling: {{range $i, $p := .StaleProducts}}{{if $i}}, {{end}}{{$p}}{{end}}</li>
{{else}}<li>All previously active products are still selling.</li>
{{end}}</ul>
<h2>Today&#39;s Sales</h2>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Product</th><th>Qty</th><th>Change</th><th>Status</th></tr>
{{range .Rows}}<tr><td>{{.Product}}</td><td align="right">{{.Quantity}}</td><td>{{.Change}}</td><td>{{.Status}}</td></tr>
{{end}}</table>
<h2>Totals</h2>
<ul>
<li>Total revenue: <strong>{{.TotalRevenue}}</strong></li>
<li>Average order value: {{.AverageValue}}</li>
<li>Order lines: {{.OrderLineCount}}</li>
</ul>
<h2>Revenue Trend (last {{.TrendDays}} days)</h2>
<ul>
{{range .Trend}}<li>{{.Date}}: {{.Revenue}}</li>
{{end}}</ul>
<h2>Best Sellers (last {{.WindowDays}} days)</h2>
<ul>
{{range .BestSelling}}<li>{{.Product}}: {{.Quantity}} pcs</li>
{{end}}</ul>
<h2>Slowest Sellers (last {{.WindowDays}} days)</h2>
<ul>
{{range .LeastSelling}}<li>{{.Product}}: {{.Quantity}} pcs</li>
{{end}}</ul>
<h2>Recommendations</h2>
<ul>
{{range .Recommendations}}<li>{{.}}</li>
{{end}}</ul>
<p>{{.Footer}}</p>
{{end}}
</body>
</html>
`

	t, err := template.New("html").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse html template: %w", err)
	}
	return t.Execute(w, buildView(rep))
}
