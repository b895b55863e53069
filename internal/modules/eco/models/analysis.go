package models

import "gorm.io/datatypes"

// CostAnalysis is the per-unit cost breakdown of a design, in USD
type CostAnalysis struct {
	Material      float64 `json:"material"`
	Manufacturing float64 `json:"manufacturing"`
	Total         float64 `json:"total"`
}

// AIAnalysis is the sustainability analysis shown in the creator wizard
type AIAnalysis struct {
	ID                  string                           `gorm:"type:text;primaryKey" json:"id"`
	ProductID           string                           `gorm:"type:text;not null;index" json:"product_id"`
	SustainabilityScore int                              `gorm:"type:integer" json:"sustainability_score"`
	Recommendations     datatypes.JSONSlice[string]      `gorm:"type:text;not null" json:"recommendations"`
	Alternatives        datatypes.JSONSlice[Material]    `gorm:"type:text;not null" json:"alternatives"`
	CarbonFootprint     float64                          `json:"carbon_footprint"`
	RecyclabilityScore  int                              `gorm:"type:integer" json:"recyclability_score"`
	CostAnalysis        datatypes.JSONType[CostAnalysis] `gorm:"type:text;not null" json:"cost_analysis"`
}

// TableName specifies the table name
func (AIAnalysis) TableName() string {
	return "ai_analyses"
}

// MaterialOption is a material the assistant can recommend
type MaterialOption struct {
	Name            string   `json:"name"`
	EcoScore        EcoScore `json:"eco_score"`
	Recyclability   int      `json:"recyclability"`
	CarbonReduction int      `json:"carbon_reduction"`
	Cost            string   `json:"cost"`
	Description     string   `json:"description"`
}

// DimensionPreset is a recommended size for a target capacity
type DimensionPreset struct {
	Capacity   int     `json:"capacity"`
	Height     float64 `json:"height"`
	Width      float64 `json:"width"`
	Depth      float64 `json:"depth"`
	Thickness  float64 `json:"thickness"`
	Ergonomics string  `json:"ergonomics"`
}

// SustainabilityFeature is an optional add-on with its cost impact
type SustainabilityFeature struct {
	Feature     string `json:"feature"`
	Impact      string `json:"impact"`
	Description string `json:"description"`
	Cost        string `json:"cost"`
}

// SuggestionCatalog groups every static recommendation table
type SuggestionCatalog struct {
	Materials      []MaterialOption        `json:"materials"`
	Dimensions     []DimensionPreset       `json:"dimensions"`
	Sustainability []SustainabilityFeature `json:"sustainability"`
}
