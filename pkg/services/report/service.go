package report

import (
	"context"
	"fmt"
	"time"

	"github.com/alertiq/sales-atlas/pkg/adapters"
	"github.com/alertiq/sales-atlas/pkg/models/domain"
	"github.com/alertiq/sales-atlas/pkg/store/sqlite/orders"
)

// Service builds daily reports from the local order cache.
type Service interface {
	DailyReport(ctx context.Context, date time.Time) (*domain.DailyReport, error)
}

type service struct {
	store   orders.Store
	builder Builder
	cfg     domain.AnalyticsConfig
}

func NewService(store orders.Store, cfg domain.AnalyticsConfig) Service {
	return &service{
		store:   store,
		builder: NewBuilder(cfg),
		cfg:     cfg,
	}
}

// lookbackDays is how far back order lines must be loaded so every metric
// has its full input: the seller window, the trend window, and the prior
// calendar week (at most 13 days back).
func (s *service) lookbackDays() int {
	days := s.cfg.WindowDays
	if s.cfg.TrendDays > days {
		days = s.cfg.TrendDays
	}
	if days < 14 {
		days = 14
	}
	return days
}

func (s *service) DailyReport(ctx context.Context, date time.Time) (*domain.DailyReport, error) {
	ref := domain.Day(date)
	from := ref.AddDate(0, 0, -s.lookbackDays())

	records, err := s.store.GetRange(ctx, from, ref)
	if err != nil {
		return nil, fmt.Errorf("load order lines: %w", err)
	}

	lines, err := adapters.MapStoreOrderLinesToDomain(records)
	if err != nil {
		return nil, fmt.Errorf("map order lines: %w", err)
	}

	return s.builder.BuildDaily(ctx, lines, ref)
}
