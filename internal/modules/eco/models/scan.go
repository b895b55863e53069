package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scan records one product scan made from a session
type Scan struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	SessionID string    `gorm:"type:text;not null;index" json:"-"`
	ProductID string    `gorm:"type:text;not null" json:"product_id"`
	Code      string    `gorm:"type:text" json:"code"`
	Location  string    `gorm:"type:text" json:"location,omitempty"`
	ScannedAt time.Time `gorm:"not null" json:"scanned_at"`
}

// TableName specifies the table name
func (Scan) TableName() string {
	return "scans"
}

// BeforeCreate sets UUID and scan time before creating
func (s *Scan) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.ScannedAt.IsZero() {
		s.ScannedAt = time.Now().UTC()
	}
	return nil
}

// ScanRequest is the scanner payload. An empty code scans the demo product.
type ScanRequest struct {
	Code     string `json:"code"`
	Location string `json:"location,omitempty"`
}

// ScanResult is returned to the scanner page
type ScanResult struct {
	Product       Product `json:"product"`
	EcoScoreLabel string  `json:"eco_score_label"`
	Scan          Scan    `json:"scan"`
}

// ScanHistoryEntry is a scan joined with its product for the client profile
type ScanHistoryEntry struct {
	ID        string  `json:"id"`
	Product   Product `json:"product"`
	ScannedAt string  `json:"scanned_at"`
	Location  string  `json:"location"`
}
