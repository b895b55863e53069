package models

// FounderStats summarises the founder's catalog
type FounderStats struct {
	TotalProducts     int64 `json:"total_products"`
	PublishedProducts int64 `json:"published_products"`
	PendingProducts   int64 `json:"pending_products"`
	TotalViews        int64 `json:"total_views"`
	TotalScans        int64 `json:"total_scans"`
}

// ClientStats is the eco-impact summary of a client
type ClientStats struct {
	TotalScans    int     `json:"total_scans"`
	SavedProducts int     `json:"saved_products"`
	CO2Saved      float64 `json:"co2_saved"` // kg
	ItemsRecycled int     `json:"items_recycled"`
	EcoPoints     int     `json:"eco_points"`
}

// Achievement is a profile badge
type Achievement struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}

// ClientProfile is the client profile page payload
type ClientProfile struct {
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Location      string             `json:"location"`
	Stats         ClientStats        `json:"stats"`
	ScanHistory   []ScanHistoryEntry `json:"scan_history"`
	SavedProducts []Product          `json:"saved_products"`
	Achievements  []Achievement      `json:"achievements"`
}

// FounderDashboard is the founder dashboard payload
type FounderDashboard struct {
	Stats               FounderStats          `json:"stats"`
	EcoScoreBreakdown   []EcoScoreCount       `json:"eco_score_breakdown"`
	RecentProducts      []Product             `json:"recent_products"`
	RecentConversations []ConversationSummary `json:"recent_conversations"`
}

// EcoScoreCount is one slice of the eco-score distribution
type EcoScoreCount struct {
	EcoScore EcoScore `json:"eco_score"`
	Label    string   `json:"label"`
	Count    int64    `json:"count"`
}
