package api

// API response models for the reporting endpoints. Monetary values are
// serialized as fixed two-decimal strings; optional metrics are pointers so
// an unavailable sentinel becomes null instead of a misleading zero.

type ProductSale struct {
	Product  string   `json:"product"`
	Quantity int      `json:"quantity"`
	Change   string   `json:"change"`
	Percent  *float64 `json:"percent,omitempty"`
}

type RankedProduct struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type TrendPoint struct {
	Date    string `json:"date"`
	Revenue string `json:"revenue"`
}

type WeekComparison struct {
	DeltaPercent  float64 `json:"delta_percent"`
	CurrentTotal  string  `json:"current_total"`
	PreviousTotal string  `json:"previous_total"`
}

type NewProduct struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type Recommendation struct {
	Product string `json:"product"`
	Reason  string `json:"reason"`
}

type DailyReport struct {
	ID                string           `json:"id"`
	Date              string           `json:"date"`
	GeneratedAt       string           `json:"generated_at"`
	NoData            bool             `json:"no_data"`
	Products          []ProductSale    `json:"products,omitempty"`
	TotalRevenue      string           `json:"total_revenue,omitempty"`
	AverageOrderValue *string          `json:"average_order_value,omitempty"`
	OrderLineCount    int              `json:"order_line_count"`
	NewProduct        *NewProduct      `json:"new_product,omitempty"`
	StaleProducts     []string         `json:"stale_products,omitempty"`
	RevenueTrend      []TrendPoint     `json:"revenue_trend,omitempty"`
	BestSelling       []RankedProduct  `json:"best_selling,omitempty"`
	LeastSelling      []RankedProduct  `json:"least_selling,omitempty"`
	WeekOverWeek      *WeekComparison  `json:"week_over_week,omitempty"`
	Recommendations   []Recommendation `json:"recommendations,omitempty"`
}
