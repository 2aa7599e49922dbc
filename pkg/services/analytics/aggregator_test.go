package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alertiq/sales-atlas/pkg/models/domain"
)

var refDate = time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC) // a Wednesday

func day(offset int) time.Time {
	return refDate.AddDate(0, 0, offset)
}

func line(date time.Time, product string, qty int, price float64) domain.OrderLine {
	return domain.OrderLine{
		Date:      date,
		Product:   product,
		Quantity:  qty,
		UnitPrice: decimal.NewFromFloat(price),
	}
}

func TestSalesByProduct(t *testing.T) {
	lines := []domain.OrderLine{
		line(day(0), "Mug", 5, 10.0),
		line(day(0), "Mug", 2, 10.0),
		line(day(0), "Poster", 1, 3.5),
		line(day(-1), "Mug", 9, 10.0),
	}

	snap := SalesByProduct(lines, refDate)

	assert.Equal(t, 7, snap.Quantity("Mug"))
	assert.Equal(t, 1, snap.Quantity("Poster"))
	assert.Equal(t, []string{"Mug", "Poster"}, snap.Products())

	t.Run("no matching records yields empty snapshot", func(t *testing.T) {
		empty := SalesByProduct(lines, day(10))
		assert.Equal(t, 0, empty.Len())
		assert.False(t, empty.Contains("Mug"))
	})
}

func TestTotalRevenue(t *testing.T) {
	lines := []domain.OrderLine{
		line(day(0), "A", 5, 10.0),
		line(day(0), "B", 2, 3.0),
		line(day(-1), "A", 100, 10.0),
	}

	assert.Equal(t, "56.00", TotalRevenue(lines, refDate).StringFixed(2))

	t.Run("zero when no records match", func(t *testing.T) {
		assert.True(t, TotalRevenue(lines, day(5)).IsZero())
	})

	t.Run("rounds to two decimal places", func(t *testing.T) {
		rounded := TotalRevenue([]domain.OrderLine{line(day(0), "C", 3, 3.333)}, refDate)
		assert.Equal(t, "10.00", rounded.StringFixed(2))
	})
}

func TestAverageOrderValue(t *testing.T) {
	lines := []domain.OrderLine{
		line(day(0), "A", 5, 10.0),
		line(day(0), "B", 2, 3.0),
	}

	t.Run("mean of per-line revenue", func(t *testing.T) {
		avg := AverageOrderValue(lines, refDate)
		require.True(t, avg.Available)
		assert.Equal(t, "28.00", avg.Amount.StringFixed(2))
	})

	t.Run("equals total over count", func(t *testing.T) {
		avg := AverageOrderValue(lines, refDate)
		total := TotalRevenue(lines, refDate)
		count := CountOrderLines(lines, refDate)
		assert.True(t, avg.Amount.Equal(total.Div(decimal.NewFromInt(int64(count)))))
	})

	t.Run("sentinel when no orders", func(t *testing.T) {
		avg := AverageOrderValue(lines, day(3))
		assert.False(t, avg.Available)
	})

	t.Run("real zero average is available", func(t *testing.T) {
		avg := AverageOrderValue([]domain.OrderLine{line(day(0), "Free", 1, 0)}, refDate)
		require.True(t, avg.Available)
		assert.True(t, avg.Amount.IsZero())
	})
}

func TestCountOrderLines(t *testing.T) {
	lines := []domain.OrderLine{
		line(day(0), "A", 5, 10.0),
		line(day(0), "A", 1, 10.0),
		line(day(-1), "A", 1, 10.0),
	}
	assert.Equal(t, 2, CountOrderLines(lines, refDate))
	assert.Equal(t, 0, CountOrderLines(lines, day(4)))
}

func TestBestSelling(t *testing.T) {
	t.Run("ranks by windowed quantity", func(t *testing.T) {
		lines := []domain.OrderLine{
			line(day(0), "A", 5, 10.0),
			line(day(0), "B", 2, 3.0),
		}
		top := BestSelling(lines, refDate, 7, 1)
		assert.Equal(t, []domain.ProductQuantity{{Product: "A", Quantity: 5}}, top)
	})

	t.Run("window includes reference date and excludes windowDays back", func(t *testing.T) {
		lines := []domain.OrderLine{
			line(day(0), "Today", 1, 1),
			line(day(-6), "EdgeIn", 10, 1),
			line(day(-7), "EdgeOut", 100, 1),
		}
		top := BestSelling(lines, refDate, 7, 5)
		assert.Equal(t, []domain.ProductQuantity{
			{Product: "EdgeIn", Quantity: 10},
			{Product: "Today", Quantity: 1},
		}, top)
	})

	t.Run("ties keep first-encountered order", func(t *testing.T) {
		lines := []domain.OrderLine{
			line(day(0), "First", 3, 1),
			line(day(0), "Second", 3, 1),
			line(day(0), "Third", 3, 1),
		}
		top := BestSelling(lines, refDate, 7, 3)
		assert.Equal(t, []string{"First", "Second", "Third"},
			[]string{top[0].Product, top[1].Product, top[2].Product})
	})
}

func TestLeastSelling(t *testing.T) {
	lines := []domain.OrderLine{
		line(day(-1), "Fast", 50, 1),
		line(day(-2), "Slow", 1, 1),
		line(day(-3), "Mid", 10, 1),
		line(day(-1), "Zero", 0, 1),
	}

	bottom := LeastSelling(lines, refDate, 7, 2)
	assert.Equal(t, []domain.ProductQuantity{
		{Product: "Slow", Quantity: 1},
		{Product: "Mid", Quantity: 10},
	}, bottom)

	t.Run("overlaps with best when fewer products than top_n plus bottom_n", func(t *testing.T) {
		few := []domain.OrderLine{line(day(0), "Only", 2, 1)}
		top := BestSelling(few, refDate, 7, 3)
		bottom := LeastSelling(few, refDate, 7, 3)
		assert.Equal(t, top, bottom)
	})
}

func TestTopNewProduct(t *testing.T) {
	t.Run("picks highest-quantity newcomer", func(t *testing.T) {
		lines := []domain.OrderLine{
			line(day(-1), "Old", 5, 1),
			line(day(0), "Old", 5, 1),
			line(day(0), "NewSmall", 2, 1),
			line(day(0), "NewBig", 8, 1),
		}
		got := TopNewProduct(lines, refDate)
		require.True(t, got.Found)
		assert.Equal(t, "NewBig", got.Product)
		assert.Equal(t, 8, got.Quantity)
	})

	t.Run("every product is a candidate when yesterday is empty", func(t *testing.T) {
		lines := []domain.OrderLine{
			line(day(0), "A", 1, 1),
			line(day(0), "B", 4, 1),
		}
		got := TopNewProduct(lines, refDate)
		require.True(t, got.Found)
		assert.Equal(t, "B", got.Product)
	})

	t.Run("ties keep first-seen product", func(t *testing.T) {
		lines := []domain.OrderLine{
			line(day(0), "FirstNew", 3, 1),
			line(day(0), "SecondNew", 3, 1),
		}
		got := TopNewProduct(lines, refDate)
		assert.Equal(t, "FirstNew", got.Product)
	})

	t.Run("sentinel when nothing new", func(t *testing.T) {
		lines := []domain.OrderLine{
			line(day(-1), "Old", 5, 1),
			line(day(0), "Old", 1, 1),
		}
		got := TopNewProduct(lines, refDate)
		assert.False(t, got.Found)
	})
}

func TestProductsWithoutSales(t *testing.T) {
	t.Run("yesterday sellers missing today", func(t *testing.T) {
		lines := []domain.OrderLine{
			line(day(-1), "Gone", 3, 1),
			line(day(-1), "Still", 2, 1),
			line(day(0), "Still", 1, 1),
		}
		assert.Equal(t, []string{"Gone"}, ProductsWithoutSales(lines, refDate))
	})

	t.Run("empty when yesterday had no sales", func(t *testing.T) {
		lines := []domain.OrderLine{line(day(0), "A", 1, 1)}
		assert.Empty(t, ProductsWithoutSales(lines, refDate))
	})

	t.Run("zero-quantity yesterday lines do not count as sold", func(t *testing.T) {
		lines := []domain.OrderLine{
			line(day(-1), "Phantom", 0, 1),
		}
		assert.Empty(t, ProductsWithoutSales(lines, refDate))
	})
}

func TestRevenueTrend(t *testing.T) {
	lines := []domain.OrderLine{
		line(day(0), "A", 1, 10.0),
		line(day(-1), "A", 2, 10.0),
		line(day(-2), "A", 3, 10.0),
	}

	trend := RevenueTrend(lines, refDate, 3)
	require.Len(t, trend, 3)

	assert.True(t, trend[0].Date.Equal(day(-2)))
	assert.True(t, trend[2].Date.Equal(day(0)))
	assert.Equal(t, "30.00", trend[0].Revenue.StringFixed(2))
	assert.Equal(t, "20.00", trend[1].Revenue.StringFixed(2))
	assert.Equal(t, "10.00", trend[2].Revenue.StringFixed(2))

	t.Run("days without sales are zero points", func(t *testing.T) {
		trend := RevenueTrend(lines, refDate, 5)
		require.Len(t, trend, 5)
		assert.True(t, trend[0].Revenue.IsZero())
		assert.True(t, trend[1].Revenue.IsZero())
	})
}

func TestWeekOverWeek(t *testing.T) {
	// refDate is Wednesday 2025-06-18; current week starts Monday 06-16,
	// previous week covers 06-09 through 06-15.
	t.Run("delta against previous full week", func(t *testing.T) {
		lines := []domain.OrderLine{
			line(day(-2), "A", 10, 10.0), // Monday, current week: 100
			line(day(0), "A", 5, 10.0),   // Wednesday, current week: 50
			line(day(-9), "A", 10, 10.0), // previous week: 100
		}
		got := WeekOverWeek(lines, refDate, time.Monday)
		require.True(t, got.Available)
		assert.InDelta(t, 50.0, got.DeltaPercent, 0.001)
		assert.Equal(t, "150.00", got.CurrentTotal.StringFixed(2))
		assert.Equal(t, "100.00", got.PreviousTotal.StringFixed(2))
	})

	t.Run("sentinel when previous week revenue is zero", func(t *testing.T) {
		lines := []domain.OrderLine{line(day(0), "A", 5, 10.0)}
		got := WeekOverWeek(lines, refDate, time.Monday)
		assert.False(t, got.Available)
	})

	t.Run("records after the reference date are ignored", func(t *testing.T) {
		lines := []domain.OrderLine{
			line(day(-9), "A", 10, 10.0),
			line(day(1), "A", 99, 10.0), // Thursday, after the reference date
		}
		got := WeekOverWeek(lines, refDate, time.Monday)
		require.True(t, got.Available)
		assert.True(t, got.CurrentTotal.IsZero())
		assert.InDelta(t, -100.0, got.DeltaPercent, 0.001)
	})

	t.Run("configurable week start", func(t *testing.T) {
		// With Sunday weeks the current week starts 06-15.
		lines := []domain.OrderLine{
			line(day(-3), "A", 1, 10.0), // Sunday 06-15, current week
			line(day(-4), "A", 2, 10.0), // Saturday 06-14, previous week
		}
		got := WeekOverWeek(lines, refDate, time.Sunday)
		require.True(t, got.Available)
		assert.Equal(t, "10.00", got.CurrentTotal.StringFixed(2))
		assert.Equal(t, "20.00", got.PreviousTotal.StringFixed(2))
	})
}

func TestAggregationIsIdempotent(t *testing.T) {
	lines := []domain.OrderLine{
		line(day(0), "A", 5, 10.0),
		line(day(-1), "B", 2, 3.0),
		line(day(-3), "C", 7, 1.5),
	}
	snapshot := append([]domain.OrderLine(nil), lines...)

	first := BestSelling(lines, refDate, 7, 3)
	second := BestSelling(lines, refDate, 7, 3)
	assert.Equal(t, first, second)

	assert.Equal(t, TotalRevenue(lines, refDate), TotalRevenue(lines, refDate))
	assert.Equal(t, snapshot, lines, "input must not be mutated")
}
