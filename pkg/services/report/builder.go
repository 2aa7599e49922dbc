// Package report assembles the daily metrics bundle out of the pure
// analytics pass. The builder is the only place the individual aggregations
// are wired together, so callers get one consistent snapshot of the day.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/alertiq/sales-atlas/pkg/models/domain"
	"github.com/alertiq/sales-atlas/pkg/services/analytics"
)

// Builder produces the metrics bundle for a reference date.
type Builder interface {
	BuildDaily(ctx context.Context, lines []domain.OrderLine, date time.Time) (*domain.DailyReport, error)
}

type builder struct {
	cfg domain.AnalyticsConfig
}

func NewBuilder(cfg domain.AnalyticsConfig) Builder {
	return &builder{cfg: cfg}
}

// BuildDaily validates the input and runs the full aggregation pass. A
// malformed line aborts the whole report; a day without sales yields the
// NoData bundle, which is a terminal branch rather than an error.
func (b *builder) BuildDaily(
	ctx context.Context,
	lines []domain.OrderLine,
	date time.Time,
) (*domain.DailyReport, error) {
	logger := zerolog.Ctx(ctx)

	if err := domain.ValidateOrderLines(lines); err != nil {
		return nil, fmt.Errorf("order data failed validation: %w", err)
	}

	rep := &domain.DailyReport{
		ID:          uuid.NewString(),
		Date:        domain.Day(date),
		GeneratedAt: time.Now(),
		WindowDays:  b.cfg.WindowDays,
		TrendDays:   b.cfg.TrendDays,
	}

	today := analytics.SalesByProduct(lines, date)
	if today.Len() == 0 {
		logger.Info().Str("date", rep.Date.Format("2006-01-02")).Msg("no sales records for reference date")
		rep.NoData = true
		return rep, nil
	}

	yesterday := analytics.SalesByProduct(lines, date.AddDate(0, 0, -1))

	rep.TodaySales = today
	rep.Changes = analytics.Compare(today, yesterday)
	rep.TotalRevenue = analytics.TotalRevenue(lines, date)
	rep.AverageValue = analytics.AverageOrderValue(lines, date)
	rep.OrderLineCount = analytics.CountOrderLines(lines, date)
	rep.NewProduct = analytics.TopNewProduct(lines, date)
	rep.StaleProducts = analytics.ProductsWithoutSales(lines, date)
	rep.RevenueTrend = analytics.RevenueTrend(lines, date, b.cfg.TrendDays)
	rep.BestSelling = analytics.BestSelling(lines, date, b.cfg.WindowDays, b.cfg.TopN)
	rep.LeastSelling = analytics.LeastSelling(lines, date, b.cfg.WindowDays, b.cfg.BottomN)
	rep.WeekOverWeek = analytics.WeekOverWeek(lines, date, b.cfg.WeekStart)
	rep.Recommendations = analytics.Recommend(rep.NewProduct, rep.StaleProducts, rep.BestSelling, rep.LeastSelling)

	logger.Debug().
		Str("report_id", rep.ID).
		Int("products", today.Len()).
		Int("order_lines", rep.OrderLineCount).
		Msg("daily report assembled")

	return rep, nil
}
