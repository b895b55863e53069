package repositories

import (
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"gorm.io/gorm"
)

type ConversationRepo interface {
	GetByID(id string) (*models.AIConversation, error)
	List(status models.ConversationStatus, limit int) ([]models.AIConversation, error)
	GetAnalysisByProductID(productID string) (*models.AIAnalysis, error)
}

type conversationRepo struct {
	db *gorm.DB
}

func NewConversationRepo(db *gorm.DB) ConversationRepo {
	return &conversationRepo{db: db}
}

func (r *conversationRepo) GetByID(id string) (*models.AIConversation, error) {
	var conv models.AIConversation
	err := r.db.First(&conv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// List returns conversations most recent first. Zero limit means all.
func (r *conversationRepo) List(status models.ConversationStatus, limit int) ([]models.AIConversation, error) {
	var convs []models.AIConversation
	query := r.db.Order("sort_order ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&convs).Error
	return convs, err
}

func (r *conversationRepo) GetAnalysisByProductID(productID string) (*models.AIAnalysis, error) {
	var analysis models.AIAnalysis
	err := r.db.Where("product_id = ?", productID).First(&analysis).Error
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}
