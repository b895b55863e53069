package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EcoScore is the A-E sustainability grade assigned to a product
type EcoScore string

const (
	EcoScoreA EcoScore = "A"
	EcoScoreB EcoScore = "B"
	EcoScoreC EcoScore = "C"
	EcoScoreD EcoScore = "D"
	EcoScoreE EcoScore = "E"
)

// EcoScores lists every grade from best to worst
var EcoScores = []EcoScore{EcoScoreA, EcoScoreB, EcoScoreC, EcoScoreD, EcoScoreE}

var ecoScoreLabels = map[EcoScore]string{
	EcoScoreA: "Excellent",
	EcoScoreB: "Good",
	EcoScoreC: "Fair",
	EcoScoreD: "Poor",
	EcoScoreE: "Very Poor",
}

// ParseEcoScore accepts a grade in any case. ok is false for anything outside A-E.
func ParseEcoScore(raw string) (EcoScore, bool) {
	score := EcoScore(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := ecoScoreLabels[score]
	return score, ok
}

func (s EcoScore) Label() string {
	return ecoScoreLabels[s]
}

// ProductStatus is either draft or published
type ProductStatus string

const (
	StatusDraft     ProductStatus = "draft"
	StatusPublished ProductStatus = "published"
)

// Material is one component of a product's bill of materials
type Material struct {
	Name        string  `json:"name"`
	Percentage  float64 `json:"percentage"`
	Recyclable  bool    `json:"recyclable"`
	Sustainable bool    `json:"sustainable"`
}

// Dimensions in millimetres
type Dimensions struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
}

// Product represents a product in the sustainability catalog
type Product struct {
	ID          string `gorm:"type:text;primaryKey" json:"id"`
	Name        string `gorm:"type:text;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Sustainability
	EcoScore      EcoScore                      `gorm:"type:text;not null" json:"eco_score"`
	Materials     datatypes.JSONSlice[Material] `gorm:"type:text;not null" json:"materials"`
	Recyclability int                           `gorm:"type:integer;not null;default:0" json:"recyclability"`

	// Media & specs
	Images       datatypes.JSONSlice[string]     `gorm:"type:text;not null" json:"images"`
	Capacity     *int                            `gorm:"type:integer" json:"capacity,omitempty"`
	Dimensions   datatypes.JSONType[*Dimensions] `gorm:"type:text;not null" json:"dimensions"`
	Manufacturer string                          `gorm:"type:text" json:"manufacturer,omitempty"`

	// Status & counters
	Status ProductStatus `gorm:"type:text;not null;default:draft" json:"status"`
	Views  *int          `gorm:"type:integer" json:"views,omitempty"`
	Scans  *int          `gorm:"type:integer" json:"scans,omitempty"`

	// Catalog position, seed order first
	SortOrder int `gorm:"type:integer;not null;default:0" json:"-"`

	// Timestamps
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// BeforeCreate sets ID and creation time before creating
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.Materials == nil {
		p.Materials = datatypes.JSONSlice[Material]{}
	}
	if p.Images == nil {
		p.Images = datatypes.JSONSlice[string]{}
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	return nil
}

// IsPublished reports whether the product is visible in the client catalog
func (p *Product) IsPublished() bool {
	return p.Status == StatusPublished
}

// GetDimensions returns the optional dimensions, nil when unset
func (p *Product) GetDimensions() *Dimensions {
	return p.Dimensions.Data()
}

// ScanCode is the payload printed in the product's QR code
func (p *Product) ScanCode() string {
	return ScanCodePrefix + p.ID
}

// ScanCodePrefix prefixes product ids in QR payloads
const ScanCodePrefix = "ecoscan:product:"

// ProductIDFromScanCode accepts either a full scan code or a bare product id
func ProductIDFromScanCode(code string) string {
	code = strings.TrimSpace(code)
	return strings.TrimPrefix(code, ScanCodePrefix)
}

// ProductFilter represents catalog filtering options
type ProductFilter struct {
	Query         string   // Search in name and description
	EcoScore      EcoScore // Empty matches any grade
	PublishedOnly bool
	Material      string // Search in material names
	ExcludeID     string
}

// ProductListResponse is the catalog listing payload
type ProductListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

// StoreOverview splits the founder's products by status
type StoreOverview struct {
	Published []Product `json:"published"`
	Drafts    []Product `json:"drafts"`
	Total     int       `json:"total"`
}

func IntPtr(v int) *int {
	return &v
}
