package analytics

import (
	"fmt"
	"time"
)

// GetDateRange returns the window ending at now for a reporting period:
// 7d, 30d, 90d or 1y.
func GetDateRange(period string, now time.Time, field string) (*DateRange, error) {
	var start time.Time

	switch period {
	case "7d":
		start = now.AddDate(0, 0, -7)
	case "30d":
		start = now.AddDate(0, 0, -30)
	case "90d":
		start = now.AddDate(0, 0, -90)
	case "1y":
		start = now.AddDate(-1, 0, 0)
	default:
		return nil, fmt.Errorf("unknown period: %s", period)
	}

	if field == "" {
		field = "created_at"
	}

	return &DateRange{
		Start: start,
		End:   now,
		Field: field,
	}, nil
}

// MonthsInPeriod is how many monthly buckets a period spans, at least two so
// a month-over-month change can always be computed.
func MonthsInPeriod(period string) int {
	switch period {
	case "90d":
		return 3
	case "1y":
		return 12
	default:
		return 2
	}
}
