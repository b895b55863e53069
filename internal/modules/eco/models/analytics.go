package models

// AnalyticsPeriod is the reporting window selected on the analytics page
type AnalyticsPeriod string

const (
	Period7Days  AnalyticsPeriod = "7d"
	Period30Days AnalyticsPeriod = "30d"
	Period90Days AnalyticsPeriod = "90d"
	Period1Year  AnalyticsPeriod = "1y"
)

// DefaultPeriod is used when no period is requested
const DefaultPeriod = Period30Days

// ParseAnalyticsPeriod maps an empty value to the default period
func ParseAnalyticsPeriod(raw string) (AnalyticsPeriod, bool) {
	switch p := AnalyticsPeriod(raw); p {
	case "":
		return DefaultPeriod, true
	case Period7Days, Period30Days, Period90Days, Period1Year:
		return p, true
	}
	return "", false
}

// MonthlyActivity is one point of the views/scans trend
type MonthlyActivity struct {
	Month string `json:"month"`
	Views int    `json:"views"`
	Scans int    `json:"scans"`
}

// ProductPerformance is one row of the top products chart
type ProductPerformance struct {
	Name        string `json:"name"`
	Views       int    `json:"views"`
	Scans       int    `json:"scans"`
	Conversions int    `json:"conversions"`
}

// LocationStat is scan activity for a city
type LocationStat struct {
	City       string `json:"city"`
	Scans      int    `json:"scans"`
	Engagement int    `json:"engagement"` // percent
}
