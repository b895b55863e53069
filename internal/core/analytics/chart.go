package analytics

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// ToMultiLineChartData converts rows to a line chart with one series per
// entry of series, in the given order.
func ToMultiLineChartData(data []map[string]interface{}, xKey string, series []SeriesConfig) ChartData {
	return toSeriesChart("line", data, xKey, series)
}

// ToBarChartData converts rows to a grouped bar chart
func ToBarChartData(data []map[string]interface{}, xKey string, series []SeriesConfig) ChartData {
	return toSeriesChart("bar", data, xKey, series)
}

// SeriesConfig maps a series name to the row field holding its values
type SeriesConfig struct {
	Name  string
	Field string
	Color string
}

func toSeriesChart(chartType string, data []map[string]interface{}, xKey string, series []SeriesConfig) ChartData {
	labels := make([]string, len(data))
	for i, row := range data {
		labels[i] = formatLabel(row[xKey])
	}

	out := make([]ChartSeries, 0, len(series))
	for _, cfg := range series {
		values := make([]interface{}, len(data))
		for i, row := range data {
			values[i] = formatValue(row[cfg.Field])
		}
		out = append(out, ChartSeries{
			Name:   cfg.Name,
			Values: values,
			Color:  cfg.Color,
		})
	}

	return ChartData{
		Type:   chartType,
		Labels: labels,
		Data:   out,
	}
}

// ToPieChartData converts query results to pie chart format
func ToPieChartData(data []map[string]interface{}, labelKey, valueKey string) PieChartData {
	labels := make([]string, len(data))
	values := make([]float64, len(data))

	for i, row := range data {
		labels[i] = formatLabel(row[labelKey])
		values[i] = toFloat64(row[valueKey])
	}

	return PieChartData{
		Type:   "pie",
		Labels: labels,
		Values: values,
	}
}

// StatCardConfig represents configuration for a stat card
type StatCardConfig struct {
	Key         string // Key of the current value
	Title       string
	Format      string // "number", "percentage" or "text"
	Icon        string
	ChangeLabel string
	PreviousKey string // Key for previous value to calculate change
}

// ToStatCards builds one card per config, in order
func ToStatCards(data map[string]interface{}, configs []StatCardConfig) []StatCard {
	cards := make([]StatCard, 0, len(configs))

	for _, cfg := range configs {
		value := data[cfg.Key]
		card := StatCard{
			Title:       cfg.Title,
			Value:       formatStatValue(value, cfg.Format),
			Icon:        cfg.Icon,
			ChangeLabel: cfg.ChangeLabel,
			Trend:       "neutral",
		}

		if cfg.PreviousKey != "" && data[cfg.PreviousKey] != nil {
			current := toFloat64(value)
			previous := toFloat64(data[cfg.PreviousKey])

			if previous > 0 {
				change := ((current - previous) / previous) * 100
				card.Change = change

				if change > 0 {
					card.Trend = "up"
				} else if change < 0 {
					card.Trend = "down"
				}
			}
		}

		cards = append(cards, card)
	}

	return cards
}

func formatLabel(value interface{}) string {
	if t, ok := value.(time.Time); ok {
		return t.Format("2006-01-02")
	}
	return cast.ToString(value)
}

func formatValue(value interface{}) interface{} {
	if value == nil {
		return 0
	}
	return value
}

// toFloat64 reads driver values (int64, float64, []byte, string) as a float
func toFloat64(value interface{}) float64 {
	if b, ok := value.([]byte); ok {
		value = string(b)
	}
	return cast.ToFloat64(value)
}

// formatStatValue renders counts compactly ("1.2K", "3.4M")
func formatStatValue(value interface{}, format string) string {
	if format == "text" {
		return formatLabel(value)
	}

	num := toFloat64(value)
	switch {
	case format == "percentage":
		return fmt.Sprintf("%.1f%%", num)
	case num >= 1_000_000:
		return fmt.Sprintf("%.1fM", num/1_000_000)
	case num >= 1_000:
		return fmt.Sprintf("%.1fK", num/1_000)
	default:
		return fmt.Sprintf("%.0f", num)
	}
}
