package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportFormat selects the rendered representation of a daily report.
type ReportFormat string

const (
	FormatText     ReportFormat = "text"
	FormatMarkdown ReportFormat = "markdown"
	FormatHTML     ReportFormat = "html"
)

// DailyReport is the full metrics bundle for one reference date. It is
// assembled in a single synchronous pass and handed to a renderer; nothing
// in it is persisted or cached across invocations.
type DailyReport struct {
	ID          string
	Date        time.Time
	GeneratedAt time.Time

	// NoData marks a reference date with zero matching order lines. When
	// set, renderers emit the minimal no-data layout and every other field
	// below is zero-valued.
	NoData bool

	TodaySales      *Snapshot
	Changes         []ProductChange
	TotalRevenue    decimal.Decimal
	AverageValue    AverageValue
	OrderLineCount  int
	NewProduct      NewProduct
	StaleProducts   []string
	RevenueTrend    []DailyRevenue
	BestSelling     []ProductQuantity
	LeastSelling    []ProductQuantity
	WeekOverWeek    WeekComparison
	Recommendations []Recommendation

	// Window lengths the ranked lists and trend were computed over, carried
	// so renderers can label sections without re-reading configuration.
	WindowDays int
	TrendDays  int
}
