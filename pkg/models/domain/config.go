package domain

import "time"

// AnalyticsConfig carries the tunables the aggregation pass needs. It is
// passed explicitly into every computation instead of living as package
// state, so two reports with different settings can run side by side.
type AnalyticsConfig struct {
	// WindowDays is the trailing window length for best/least seller
	// ranking. A record at date d is inside the window for reference date r
	// iff 0 <= r-d < WindowDays, so the reference date itself counts.
	WindowDays int

	// TopN and BottomN bound the ranked seller lists.
	TopN    int
	BottomN int

	// TrendDays is how many trailing days the revenue trend covers,
	// reference date inclusive.
	TrendDays int

	// WeekStart is the weekday a calendar week begins on for the
	// week-over-week comparison.
	WeekStart time.Weekday
}

// DefaultAnalyticsConfig mirrors the defaults of the reporting pipeline:
// seven-day windows, top/bottom three, Monday weeks.
func DefaultAnalyticsConfig() AnalyticsConfig {
	return AnalyticsConfig{
		WindowDays: 7,
		TopN:       3,
		BottomN:    3,
		TrendDays:  7,
		WeekStart:  time.Monday,
	}
}
