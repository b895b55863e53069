package repositories

import (
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"gorm.io/gorm"
)

type ProductRepo interface {
	Create(product *models.Product) error
	GetByID(id string) (*models.Product, error)
	Exists(id string) (bool, error)
	List() ([]models.Product, error)
	First() (*models.Product, error)
	SetStatus(id string, status models.ProductStatus) error
	IncrementViews(id string) error
	IncrementScans(id string) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepo {
	return &productRepo{db: db}
}

// Create appends the product at the end of the catalog
func (r *productRepo) Create(product *models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var last int
		if err := tx.Model(&models.Product{}).Select("COALESCE(MAX(sort_order), 0)").Scan(&last).Error; err != nil {
			return err
		}
		product.SortOrder = last + 1
		return tx.Create(product).Error
	})
}

func (r *productRepo) GetByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// List returns every product in catalog order
func (r *productRepo) List() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Order("sort_order ASC").Order("created_at ASC").Find(&products).Error
	return products, err
}

// First returns the first catalog product, used as the demo product
func (r *productRepo) First() (*models.Product, error) {
	var product models.Product
	err := r.db.Order("sort_order ASC").Order("created_at ASC").First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) SetStatus(id string, status models.ProductStatus) error {
	result := r.db.Model(&models.Product{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepo) IncrementViews(id string) error {
	return r.increment(id, "views")
}

func (r *productRepo) IncrementScans(id string) error {
	return r.increment(id, "scans")
}

func (r *productRepo) increment(id, column string) error {
	result := r.db.Model(&models.Product{}).
		Where("id = ?", id).
		Update(column, gorm.Expr("COALESCE("+column+", 0) + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
