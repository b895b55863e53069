package models

import "gorm.io/datatypes"

// PointType distinguishes plain drop-off points from buyback points
type PointType string

const (
	PointRecycling PointType = "recycling"
	PointBuyback   PointType = "buyback"
)

// RecyclingPoint is a drop-off location shown on the recycling map
type RecyclingPoint struct {
	ID                string                      `gorm:"type:text;primaryKey" json:"id"`
	Name              string                      `gorm:"type:text;not null" json:"name"`
	Type              PointType                   `gorm:"type:text;not null" json:"type"`
	Lat               float64                     `gorm:"not null" json:"lat"`
	Lng               float64                     `gorm:"not null" json:"lng"`
	Address           string                      `gorm:"type:text" json:"address"`
	Hours             string                      `gorm:"type:text" json:"hours"`
	AcceptedMaterials datatypes.JSONSlice[string] `gorm:"type:text;not null" json:"accepted_materials"`
	Incentives        string                      `gorm:"type:text" json:"incentives,omitempty"`
}

// TableName specifies the table name
func (RecyclingPoint) TableName() string {
	return "recycling_points"
}

// RecyclingPointFilter represents recycling map filtering options
type RecyclingPointFilter struct {
	Type     PointType
	Material string
	// Origin orders results nearest first when set
	Origin *Coordinates
}

// Coordinates is a WGS84 latitude/longitude pair
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RecyclingPointResult is a point with its distance from the requested origin
type RecyclingPointResult struct {
	RecyclingPoint
	DistanceKm *float64 `json:"distance_km,omitempty"`
}
