package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vinylstore/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
// Every query goes through GORM placeholders; caller input is never
// concatenated into query text.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves every product, newest first. The id tiebreak keeps rows
// created in the same instant in a deterministic order.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("created_at DESC, id DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID, or (nil, nil) when no row
// has that id.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product. GORM fills in the assigned ID and CreatedAt.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update replaces the mutable columns of the row with the given id.
// image_url and created_at are deliberately absent from the column set.
func (r *GORMProductRepository) Update(id uint, input *models.ProductInput) error {
	columns := map[string]interface{}{
		"name":         input.Name,
		"artist":       input.Artist,
		"description":  input.Description,
		"price":        input.Price,
		"stock":        input.Stock,
		"genre":        input.Genre,
		"release_year": input.ReleaseYear,
	}
	if err := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(columns).Error; err != nil {
		return fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return nil
}

// Delete removes the row with the given id.
func (r *GORMProductRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}
