package repositories

import (
	"vinylstore/internal/models"
)

// ProductRepository defines the interface for product data access.
// GetByID reports an absent row as (nil, nil); translating absence into a
// not-found response is the caller's job.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(id uint, input *models.ProductInput) error
	Delete(id uint) error
}
