package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/repositories"
	"github.com/rs/zerolog/log"
)

type ScannerService struct {
	productRepo repositories.ProductRepo
	scanRepo    repositories.ScanRepo
	products    *ProductService
}

func NewScannerService(productRepo repositories.ProductRepo, scanRepo repositories.ScanRepo) *ScannerService {
	return &ScannerService{
		productRepo: productRepo,
		scanRepo:    scanRepo,
		products:    NewProductService(productRepo),
	}
}

// Scan resolves a scanned code to a product, bumps its scan counter and
// records the scan for the session. An empty code scans the demo product.
func (s *ScannerService) Scan(sessionID string, req models.ScanRequest) (*models.ScanResult, error) {
	var (
		product *models.Product
		err     error
	)

	code := strings.TrimSpace(req.Code)
	if code == "" {
		product, err = s.products.DefaultProduct()
	} else {
		product, err = s.products.GetProduct(models.ProductIDFromScanCode(code))
	}
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.IncrementScans(product.ID); err != nil {
		return nil, fmt.Errorf("failed to count scan: %w", err)
	}

	scan := &models.Scan{
		SessionID: sessionID,
		ProductID: product.ID,
		Code:      product.ScanCode(),
		Location:  strings.TrimSpace(req.Location),
	}
	if err := s.scanRepo.Create(scan); err != nil {
		return nil, fmt.Errorf("failed to record scan: %w", err)
	}

	product, err = s.products.GetProduct(product.ID)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("session_id", sessionID).Str("product_id", product.ID).Msg("product scanned")
	return &models.ScanResult{
		Product:       *product,
		EcoScoreLabel: product.EcoScore.Label(),
		Scan:          *scan,
	}, nil
}

// History returns the session's scans, newest first, joined with products.
// Scans of products that no longer exist are skipped.
func (s *ScannerService) History(sessionID string) ([]models.ScanHistoryEntry, error) {
	scans, err := s.scanRepo.ListBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}

	entries := make([]models.ScanHistoryEntry, 0, len(scans))
	for _, scan := range scans {
		product, err := s.products.GetProduct(scan.ProductID)
		if errors.Is(err, ErrProductNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.ScanHistoryEntry{
			ID:        scan.ID,
			Product:   *product,
			ScannedAt: scan.ScannedAt.Format(time.RFC3339),
			Location:  scan.Location,
		})
	}
	return entries, nil
}

// Forget drops the session's scan history
func (s *ScannerService) Forget(sessionID string) error {
	return s.scanRepo.DeleteBySession(sessionID)
}
