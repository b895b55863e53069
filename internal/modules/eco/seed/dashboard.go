package seed

import (
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
)

// DemoClient is the identity shown on the client profile
var DemoClient = struct {
	Name     string
	Email    string
	Location string
}{
	Name:     "John Doe",
	Email:    "john.doe@email.com",
	Location: "San Francisco, CA",
}

// ClientStats returns the eco-impact baseline of the demo client
func ClientStats() models.ClientStats {
	return models.ClientStats{
		TotalScans:    47,
		SavedProducts: 12,
		CO2Saved:      23.5,
		ItemsRecycled: 18,
		EcoPoints:     1250,
	}
}

// DemoScan is a scan the demo client made before the session started
type DemoScan struct {
	ID        string
	ProductID string
	ScannedAt string
	Location  string
}

// ScanHistory returns the demo client's past scans, newest first
func ScanHistory() []DemoScan {
	return []DemoScan{
		{ID: "1", ProductID: "1", ScannedAt: "2024-10-20T10:30:00", Location: "San Francisco, CA"},
		{ID: "2", ProductID: "2", ScannedAt: "2024-10-19T14:20:00", Location: "San Francisco, CA"},
		{ID: "3", ProductID: "3", ScannedAt: "2024-10-18T09:15:00", Location: "Oakland, CA"},
	}
}

// Achievements returns the profile badges
func Achievements() []models.Achievement {
	return []models.Achievement{
		{Icon: "scan", Title: "First Scan", Description: "Scanned your first product", Earned: true},
		{Icon: "recycle", Title: "Recycler", Description: "Recycled 10+ items", Earned: true},
		{Icon: "leaf", Title: "Eco Warrior", Description: "Saved 20kg CO₂", Earned: true},
		{Icon: "award", Title: "Top Contributor", Description: "Made 50+ scans", Earned: false},
	}
}

// MonthlyActivity returns the views/scans trend, oldest month first
func MonthlyActivity() []models.MonthlyActivity {
	return []models.MonthlyActivity{
		{Month: "Jan", Views: 245, Scans: 89},
		{Month: "Feb", Views: 312, Scans: 124},
		{Month: "Mar", Views: 398, Scans: 156},
		{Month: "Apr", Views: 467, Scans: 189},
		{Month: "May", Views: 534, Scans: 223},
		{Month: "Jun", Views: 621, Scans: 267},
	}
}

// ProductPerformance returns the top products by views
func ProductPerformance() []models.ProductPerformance {
	return []models.ProductPerformance{
		{Name: "Eco Bottle Pro", Views: 1234, Scans: 456, Conversions: 89},
		{Name: "Reusable Cup", Views: 987, Scans: 342, Conversions: 67},
		{Name: "Food Container", Views: 756, Scans: 289, Conversions: 54},
		{Name: "Lunch Box", Views: 634, Scans: 234, Conversions: 43},
		{Name: "Water Bottle", Views: 521, Scans: 198, Conversions: 38},
	}
}

// Locations returns the top scanning cities
func Locations() []models.LocationStat {
	return []models.LocationStat{
		{City: "San Francisco", Scans: 234, Engagement: 89},
		{City: "New York", Scans: 198, Engagement: 76},
		{City: "Los Angeles", Scans: 167, Engagement: 82},
		{City: "Seattle", Scans: 145, Engagement: 71},
		{City: "Austin", Scans: 123, Engagement: 68},
	}
}

// PricingPlans returns the subscription tiers
func PricingPlans() []models.PricingPlan {
	return []models.PricingPlan{
		{
			Name:        "Free",
			Price:       "0",
			Description: "Perfect for getting started",
			Features: []models.PlanFeature{
				{Name: "Up to 3 products", Included: true},
				{Name: "Basic AI assistance", Included: true},
				{Name: "10 image generations/month", Included: true},
				{Name: "100 MB storage", Included: true},
				{Name: "Community support", Included: true},
				{Name: "Advanced analytics", Included: false},
				{Name: "Custom branding", Included: false},
				{Name: "API access", Included: false},
				{Name: "Priority support", Included: false},
			},
			CTA: "Start Free",
		},
		{
			Name:        "Pro",
			Price:       "29",
			Description: "For growing eco-businesses",
			Features: []models.PlanFeature{
				{Name: "Unlimited products", Included: true},
				{Name: "Advanced AI assistance", Included: true},
				{Name: "500 image generations/month", Included: true},
				{Name: "10 GB storage", Included: true},
				{Name: "Priority support", Included: true},
				{Name: "Advanced analytics", Included: true},
				{Name: "Custom branding", Included: true},
				{Name: "API access", Included: false},
				{Name: "White-label solution", Included: false},
			},
			CTA:     "Start Pro Trial",
			Popular: true,
		},
		{
			Name:        "Enterprise",
			Price:       "99",
			Description: "For large organizations",
			Features: []models.PlanFeature{
				{Name: "Unlimited everything", Included: true},
				{Name: "Premium AI assistance", Included: true},
				{Name: "Unlimited image generations", Included: true},
				{Name: "Unlimited storage", Included: true},
				{Name: "Dedicated support", Included: true},
				{Name: "Advanced analytics", Included: true},
				{Name: "Custom branding", Included: true},
				{Name: "Full API access", Included: true},
				{Name: "White-label solution", Included: true},
			},
			CTA: "Contact Sales",
		},
	}
}
