package services

import (
	"errors"
	"fmt"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/qrcode"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/repositories"
	"gorm.io/gorm"
)

type ProductService struct {
	productRepo repositories.ProductRepo
}

func NewProductService(productRepo repositories.ProductRepo) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// ListProducts returns the catalog filtered by the given criteria
func (s *ProductService) ListProducts(filter models.ProductFilter) (*models.ProductListResponse, error) {
	products, err := s.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	filtered := FilterProducts(products, filter)
	return &models.ProductListResponse{
		Products: filtered,
		Total:    len(filtered),
	}, nil
}

// ClientCatalog returns the published products matching the search text
func (s *ProductService) ClientCatalog(query string) (*models.ProductListResponse, error) {
	return s.ListProducts(models.ProductFilter{Query: query, PublishedOnly: true})
}

// SimilarProducts lists alternatives to a product, never the product itself.
// Drafts are included unless the filter asks for published products only.
func (s *ProductService) SimilarProducts(id string, filter models.ProductFilter) (*models.ProductListResponse, error) {
	if _, err := s.GetProduct(id); err != nil {
		return nil, err
	}
	filter.ExcludeID = id
	return s.ListProducts(filter)
}

// StoreOverview splits the founder's products into published and drafts
func (s *ProductService) StoreOverview(query string) (*models.StoreOverview, error) {
	products, err := s.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	overview := &models.StoreOverview{
		Published: []models.Product{},
		Drafts:    []models.Product{},
	}
	for _, p := range FilterProducts(products, models.ProductFilter{Query: query}) {
		if p.IsPublished() {
			overview.Published = append(overview.Published, p)
		} else {
			overview.Drafts = append(overview.Drafts, p)
		}
	}
	overview.Total = len(overview.Published) + len(overview.Drafts)
	return overview, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// ProductExists reports whether id names a catalog product
func (s *ProductService) ProductExists(id string) (bool, error) {
	return s.productRepo.Exists(id)
}

// DefaultProduct is the first catalog product, selected for new sessions
// and scanned when the scanner sends no code.
func (s *ProductService) DefaultProduct() (*models.Product, error) {
	product, err := s.productRepo.First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCatalogEmpty
		}
		return nil, fmt.Errorf("failed to get default product: %w", err)
	}
	return product, nil
}

// TogglePublish flips a product between draft and published
func (s *ProductService) TogglePublish(id string) (*models.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	next := models.StatusPublished
	if product.IsPublished() {
		next = models.StatusDraft
	}

	if err := s.productRepo.SetStatus(id, next); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product status: %w", err)
	}
	return s.GetProduct(id)
}

// ProductQRCode renders the product's scan code as a PNG
func (s *ProductService) ProductQRCode(id string, size int) ([]byte, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}
	return qrcode.PNG(product.ScanCode(), size)
}

// RecordView counts a product page visit
func (s *ProductService) RecordView(id string) error {
	if err := s.productRepo.IncrementViews(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to count view: %w", err)
	}
	return nil
}
