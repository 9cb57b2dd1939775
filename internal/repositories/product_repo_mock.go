package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"vinylstore/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It mimics the store contract: auto-increment ids, store-assigned
// timestamps, newest-first listing and nil results for absent ids.
type MockProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// GetAll returns all products, newest first.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	sort.Slice(productList, func(i, j int) bool {
		if !productList[i].CreatedAt.Equal(productList[j].CreatedAt) {
			return productList[i].CreatedAt.After(productList[j].CreatedAt)
		}
		return productList[i].ID > productList[j].ID
	})
	return productList, nil
}

// GetByID returns a product by its ID, or (nil, nil) when absent.
func (r *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

// Create adds a new product, assigning its id and creation time.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	product.CreatedAt = time.Now()
	r.products[product.ID] = *product
	return nil
}

// Update replaces the mutable fields of an existing product.
func (r *MockProductRepository) Update(id uint, input *models.ProductInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %d not found for update", id)
	}
	existing.Name = input.Name
	existing.Artist = input.Artist
	existing.Description = input.Description
	if input.Price != nil {
		existing.Price = *input.Price
	}
	if input.Stock != nil {
		existing.Stock = *input.Stock
	}
	existing.Genre = input.Genre
	existing.ReleaseYear = input.ReleaseYear
	r.products[id] = existing
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, id)
	return nil
}
