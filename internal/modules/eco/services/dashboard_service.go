package services

import (
	"fmt"
	"math"
	"time"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/repositories"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/seed"
)

const recentLimit = 3

// gradeValue maps A-E onto 1-5 so grades can be averaged in SQL
const gradeValue = "CASE eco_score WHEN 'A' THEN 1 WHEN 'B' THEN 2 WHEN 'C' THEN 3 WHEN 'D' THEN 4 ELSE 5 END"

// AnalyticsReport is the analytics page payload
type AnalyticsReport struct {
	Period             models.AnalyticsPeriod `json:"period"`
	From               time.Time              `json:"from"`
	To                 time.Time              `json:"to"`
	StatCards          []analytics.StatCard   `json:"stat_cards"`
	Activity           analytics.ChartData    `json:"activity"`
	ProductPerformance analytics.ChartData    `json:"product_performance"`
	EcoScores          analytics.PieChartData `json:"eco_scores"`
	Locations          []models.LocationStat  `json:"locations"`
	LiveScans          int64                  `json:"live_scans"`
}

type DashboardService struct {
	productRepo repositories.ProductRepo
	convRepo    repositories.ConversationRepo
	aggregator  *analytics.Aggregator
	now         func() time.Time
}

func NewDashboardService(productRepo repositories.ProductRepo, convRepo repositories.ConversationRepo, aggregator *analytics.Aggregator) *DashboardService {
	return &DashboardService{
		productRepo: productRepo,
		convRepo:    convRepo,
		aggregator:  aggregator,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// FounderStats computes the catalog totals from the live product table
func (s *DashboardService) FounderStats() (*models.FounderStats, error) {
	total, err := s.aggregator.Count("products", nil, nil)
	if err != nil {
		return nil, err
	}
	published, err := s.aggregator.Count("products", map[string]interface{}{"status": models.StatusPublished}, nil)
	if err != nil {
		return nil, err
	}
	views, err := s.aggregator.Sum("products", "views", nil)
	if err != nil {
		return nil, err
	}
	scans, err := s.aggregator.Sum("products", "scans", nil)
	if err != nil {
		return nil, err
	}

	return &models.FounderStats{
		TotalProducts:     total,
		PublishedProducts: published,
		PendingProducts:   total - published,
		TotalViews:        int64(views),
		TotalScans:        int64(scans),
	}, nil
}

// EcoScoreBreakdown counts products per grade, every grade present
func (s *DashboardService) EcoScoreBreakdown() ([]models.EcoScoreCount, error) {
	counts, err := s.aggregator.CountBy("products", "eco_score", nil)
	if err != nil {
		return nil, err
	}

	breakdown := make([]models.EcoScoreCount, 0, len(models.EcoScores))
	for _, grade := range models.EcoScores {
		breakdown = append(breakdown, models.EcoScoreCount{
			EcoScore: grade,
			Label:    grade.Label(),
			Count:    counts[string(grade)],
		})
	}
	return breakdown, nil
}

// FounderDashboard assembles the founder landing page
func (s *DashboardService) FounderDashboard() (*models.FounderDashboard, error) {
	stats, err := s.FounderStats()
	if err != nil {
		return nil, err
	}
	breakdown, err := s.EcoScoreBreakdown()
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if len(products) > recentLimit {
		products = products[:recentLimit]
	}

	convs, err := s.convRepo.List("", recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	summaries := make([]models.ConversationSummary, 0, len(convs))
	for i := range convs {
		summaries = append(summaries, convs[i].Summary())
	}

	return &models.FounderDashboard{
		Stats:               *stats,
		EcoScoreBreakdown:   breakdown,
		RecentProducts:      products,
		RecentConversations: summaries,
	}, nil
}

// Analytics builds the analytics page for a period. The monthly trend is
// the demo series cut to the period; catalog figures and recorded scans are
// live.
func (s *DashboardService) Analytics(period models.AnalyticsPeriod) (*AnalyticsReport, error) {
	window, err := analytics.GetDateRange(string(period), s.now(), "scanned_at")
	if err != nil {
		return nil, err
	}

	monthly := seed.MonthlyActivity()
	if n := analytics.MonthsInPeriod(string(period)); n < len(monthly) {
		monthly = monthly[len(monthly)-n:]
	}

	liveScans, err := s.aggregator.Count("scans", nil, window)
	if err != nil {
		return nil, err
	}
	published, err := s.aggregator.Count("products", map[string]interface{}{"status": models.StatusPublished}, nil)
	if err != nil {
		return nil, err
	}
	avgGrade, err := s.aggregator.Average("products", gradeValue, nil)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.EcoScoreBreakdown()
	if err != nil {
		return nil, err
	}

	activityRows := make([]map[string]interface{}, 0, len(monthly))
	var views, scans int
	for _, m := range monthly {
		activityRows = append(activityRows, map[string]interface{}{"month": m.Month, "views": m.Views, "scans": m.Scans})
		views += m.Views
		scans += m.Scans
	}
	last, prev := monthly[len(monthly)-1], monthly[len(monthly)-2]

	performanceRows := make([]map[string]interface{}, 0)
	for _, p := range seed.ProductPerformance() {
		performanceRows = append(performanceRows, map[string]interface{}{
			"name": p.Name, "views": p.Views, "scans": p.Scans, "conversions": p.Conversions,
		})
	}

	gradeRows := make([]map[string]interface{}, 0, len(breakdown))
	for _, b := range breakdown {
		gradeRows = append(gradeRows, map[string]interface{}{"grade": string(b.EcoScore) + " Grade", "count": b.Count})
	}

	cards := analytics.ToStatCards(map[string]interface{}{
		"views":     views,
		"scans":     scans + int(liveScans),
		"grade":     averageGrade(avgGrade),
		"published": published,
	}, []analytics.StatCardConfig{
		{Key: "views", Title: "Total Views", Format: "number", Icon: "eye", ChangeLabel: "from last month"},
		{Key: "scans", Title: "Total Scans", Format: "number", Icon: "scan", ChangeLabel: "from last month"},
		{Key: "grade", Title: "Avg Eco Score", Format: "text", Icon: "trending-up"},
		{Key: "published", Title: "Active Products", Format: "number", Icon: "package"},
	})
	// Month-over-month change uses the last two months, not the window totals.
	cards[0] = withChange(cards[0], float64(last.Views), float64(prev.Views))
	cards[1] = withChange(cards[1], float64(last.Scans), float64(prev.Scans))

	return &AnalyticsReport{
		Period:    period,
		From:      window.Start,
		To:        window.End,
		StatCards: cards,
		Activity: analytics.ToMultiLineChartData(activityRows, "month", []analytics.SeriesConfig{
			{Name: "Views", Field: "views"},
			{Name: "Scans", Field: "scans"},
		}),
		ProductPerformance: analytics.ToBarChartData(performanceRows, "name", []analytics.SeriesConfig{
			{Name: "Views", Field: "views"},
			{Name: "Scans", Field: "scans"},
			{Name: "Conversions", Field: "conversions"},
		}),
		EcoScores: analytics.ToPieChartData(gradeRows, "grade", "count"),
		Locations: seed.Locations(),
		LiveScans: liveScans,
	}, nil
}

func withChange(card analytics.StatCard, current, previous float64) analytics.StatCard {
	if previous <= 0 {
		return card
	}
	card.Change = math.Round((current-previous)/previous*1000) / 10
	switch {
	case card.Change > 0:
		card.Trend = "up"
	case card.Change < 0:
		card.Trend = "down"
	default:
		card.Trend = "neutral"
	}
	return card
}

// averageGrade rounds a 1-5 average back to a letter
func averageGrade(avg float64) string {
	if avg <= 0 {
		return "-"
	}
	idx := int(math.Round(avg)) - 1
	if idx >= len(models.EcoScores) {
		idx = len(models.EcoScores) - 1
	}
	return string(models.EcoScores[idx])
}
