package repositories

import (
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"gorm.io/gorm"
)

type ScanRepo interface {
	Create(scan *models.Scan) error
	ListBySession(sessionID string) ([]models.Scan, error)
	DeleteBySession(sessionID string) error
}

type scanRepo struct {
	db *gorm.DB
}

func NewScanRepo(db *gorm.DB) ScanRepo {
	return &scanRepo{db: db}
}

func (r *scanRepo) Create(scan *models.Scan) error {
	return r.db.Create(scan).Error
}

// ListBySession returns the session's scans, newest first
func (r *scanRepo) ListBySession(sessionID string) ([]models.Scan, error) {
	var scans []models.Scan
	err := r.db.Where("session_id = ?", sessionID).Order("scanned_at DESC").Order("rowid DESC").Find(&scans).Error
	return scans, err
}

func (r *scanRepo) DeleteBySession(sessionID string) error {
	return r.db.Where("session_id = ?", sessionID).Delete(&models.Scan{}).Error
}
