package analytics

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// Aggregator provides generic database aggregation helpers
type Aggregator struct {
	db *gorm.DB
}

// NewAggregator creates a new aggregator
func NewAggregator(db *gorm.DB) *Aggregator {
	return &Aggregator{db: db}
}

// Aggregate performs a generic aggregation query
func (a *Aggregator) Aggregate(query AggregateQuery) ([]map[string]interface{}, error) {
	selectParts := append([]string{}, query.GroupBy...)

	// Sorted so the generated SQL is stable
	aliases := make([]string, 0, len(query.Aggregates))
	for alias := range query.Aggregates {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		selectParts = append(selectParts, fmt.Sprintf("%s AS %s", query.Aggregates[alias], alias))
	}

	db := a.applyFilters(a.db.Table(query.Table).Select(strings.Join(selectParts, ", ")), query.Filters)

	if query.DateRange != nil {
		db = db.Where(fmt.Sprintf("%s BETWEEN ? AND ?", query.DateRange.Field),
			query.DateRange.Start, query.DateRange.End)
	}

	if len(query.GroupBy) > 0 {
		db = db.Group(strings.Join(query.GroupBy, ", "))
	}

	for _, order := range query.OrderBy {
		db = db.Order(order)
	}

	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}

	var results []map[string]interface{}
	if err := db.Find(&results).Error; err != nil {
		return nil, fmt.Errorf("aggregate query failed: %w", err)
	}

	return results, nil
}

// Count performs a simple COUNT query with filters
func (a *Aggregator) Count(table string, filters map[string]interface{}, dateRange *DateRange) (int64, error) {
	db := a.applyFilters(a.db.Table(table), filters)
	if dateRange != nil {
		db = db.Where(fmt.Sprintf("%s BETWEEN ? AND ?", dateRange.Field), dateRange.Start, dateRange.End)
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count query failed: %w", err)
	}

	return count, nil
}

// CountBy counts rows per distinct value of column
func (a *Aggregator) CountBy(table, column string, filters map[string]interface{}) (map[string]int64, error) {
	results, err := a.Aggregate(AggregateQuery{
		Table:      table,
		GroupBy:    []string{column},
		Aggregates: map[string]string{"count": "COUNT(*)"},
		Filters:    filters,
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(results))
	for _, row := range results {
		counts[formatLabel(row[column])] = int64(toFloat64(row["count"]))
	}
	return counts, nil
}

// Sum performs a simple SUM query; NULLs count as zero
func (a *Aggregator) Sum(table, column string, filters map[string]interface{}) (float64, error) {
	return a.single(table, fmt.Sprintf("COALESCE(SUM(%s), 0)", column), filters)
}

// Average performs a simple AVG query
func (a *Aggregator) Average(table, column string, filters map[string]interface{}) (float64, error) {
	return a.single(table, fmt.Sprintf("AVG(%s)", column), filters)
}

func (a *Aggregator) single(table, expr string, filters map[string]interface{}) (float64, error) {
	results, err := a.Aggregate(AggregateQuery{
		Table:      table,
		Aggregates: map[string]string{"value": expr},
		Filters:    filters,
	})
	if err != nil {
		return 0, err
	}
	if len(results) == 0 || results[0]["value"] == nil {
		return 0, nil
	}

	switch v := results[0]["value"].(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("unexpected aggregate result type: %T", v)
	}
}

func (a *Aggregator) applyFilters(db *gorm.DB, filters map[string]interface{}) *gorm.DB {
	for condition, value := range filters {
		if strings.Contains(condition, "?") {
			// Parameterized condition (e.g., "views > ?")
			db = db.Where(condition, value)
		} else {
			// Simple equality (e.g., {"status": "published"})
			db = db.Where(fmt.Sprintf("%s = ?", condition), value)
		}
	}
	return db
}
