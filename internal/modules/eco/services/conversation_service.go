package services

import (
	"errors"
	"fmt"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/repositories"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/seed"
	"gorm.io/gorm"
)

type ConversationService struct {
	convRepo repositories.ConversationRepo
}

func NewConversationService(convRepo repositories.ConversationRepo) *ConversationService {
	return &ConversationService{convRepo: convRepo}
}

// ListConversations returns conversation cards, most recent first
func (s *ConversationService) ListConversations(status models.ConversationStatus, limit int) ([]models.ConversationSummary, error) {
	convs, err := s.convRepo.List(status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	summaries := make([]models.ConversationSummary, 0, len(convs))
	for i := range convs {
		summaries = append(summaries, convs[i].Summary())
	}
	return summaries, nil
}

// GetConversation returns the full transcript
func (s *ConversationService) GetConversation(id string) (*models.AIConversation, error) {
	conv, err := s.convRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return conv, nil
}

// GetAnalysis returns the sustainability analysis of a product
func (s *ConversationService) GetAnalysis(productID string) (*models.AIAnalysis, error) {
	analysis, err := s.convRepo.GetAnalysisByProductID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return analysis, nil
}

// Suggestions returns the static recommendation tables
func (s *ConversationService) Suggestions() models.SuggestionCatalog {
	return seed.Suggestions()
}
