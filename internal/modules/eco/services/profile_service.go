package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/repositories"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/seed"
)

const (
	savedProductsShown = 4
	topContributorMin  = 50
)

type ProfileService struct {
	productRepo repositories.ProductRepo
	products    *ProductService
	scanner     *ScannerService
}

func NewProfileService(productRepo repositories.ProductRepo, scanner *ScannerService) *ProfileService {
	return &ProfileService{
		productRepo: productRepo,
		products:    NewProductService(productRepo),
		scanner:     scanner,
	}
}

// Profile returns the demo client's profile with the session's own scans
// added on top of the baseline history.
func (s *ProfileService) Profile(sessionID string) (*models.ClientProfile, error) {
	history, err := s.scanner.History(sessionID)
	if err != nil {
		return nil, err
	}
	sessionScans := len(history)

	for _, demo := range seed.ScanHistory() {
		product, err := s.products.GetProduct(demo.ProductID)
		if errors.Is(err, ErrProductNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		scannedAt := demo.ScannedAt
		if t, err := time.Parse("2006-01-02T15:04:05", demo.ScannedAt); err == nil {
			scannedAt = t.UTC().Format(time.RFC3339)
		}
		history = append(history, models.ScanHistoryEntry{
			ID:        "demo-" + demo.ID,
			Product:   *product,
			ScannedAt: scannedAt,
			Location:  demo.Location,
		})
	}

	saved, err := s.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if len(saved) > savedProductsShown {
		saved = saved[:savedProductsShown]
	}

	stats := seed.ClientStats()
	stats.TotalScans += sessionScans

	achievements := seed.Achievements()
	for i := range achievements {
		if achievements[i].Title == "Top Contributor" {
			achievements[i].Earned = stats.TotalScans >= topContributorMin
		}
	}

	return &models.ClientProfile{
		Name:          seed.DemoClient.Name,
		Email:         seed.DemoClient.Email,
		Location:      seed.DemoClient.Location,
		Stats:         stats,
		ScanHistory:   history,
		SavedProducts: saved,
		Achievements:  achievements,
	}, nil
}

// Pricing returns the subscription tiers
func (s *ProfileService) Pricing() []models.PricingPlan {
	return seed.PricingPlans()
}
