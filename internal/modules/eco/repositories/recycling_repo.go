package repositories

import (
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"gorm.io/gorm"
)

type RecyclingPointRepo interface {
	GetByID(id string) (*models.RecyclingPoint, error)
	List(pointType models.PointType) ([]models.RecyclingPoint, error)
}

type recyclingPointRepo struct {
	db *gorm.DB
}

func NewRecyclingPointRepo(db *gorm.DB) RecyclingPointRepo {
	return &recyclingPointRepo{db: db}
}

func (r *recyclingPointRepo) GetByID(id string) (*models.RecyclingPoint, error) {
	var point models.RecyclingPoint
	err := r.db.First(&point, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &point, nil
}

// List returns points ordered by id, optionally of one type only
func (r *recyclingPointRepo) List(pointType models.PointType) ([]models.RecyclingPoint, error) {
	var points []models.RecyclingPoint
	query := r.db.Order("id ASC")
	if pointType != "" {
		query = query.Where("type = ?", pointType)
	}
	err := query.Find(&points).Error
	return points, err
}
