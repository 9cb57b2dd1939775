package services

import (
	"fmt"
	"log"

	"vinylstore/internal/apperrors"
	"vinylstore/internal/models"
	"vinylstore/internal/repositories"
)

// EventPublisher publishes catalog change events. A nil publisher disables
// publishing; a failed publish never affects the catalog operation itself.
type EventPublisher interface {
	PublishProductEvent(action string, product *models.Product) error
}

// ProductService handles business logic related to catalog products.
type ProductService struct {
	repo   repositories.ProductRepository
	images ImageResolver
	events EventPublisher
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, images ImageResolver, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		images: images,
		events: events,
	}
}

// GetAllProducts retrieves all products, newest first.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.ErrProductNotFound
	}
	return product, nil
}

// CreateProduct resolves a cover image, inserts the product and reads the
// row back so the result carries the store-assigned id, image URL and
// creation time.
func (s *ProductService) CreateProduct(input *models.ProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:        input.Name,
		Artist:      input.Artist,
		Description: input.Description,
		Price:       *input.Price,
		Stock:       *input.Stock,
		Genre:       input.Genre,
		ReleaseYear: input.ReleaseYear,
		ImageURL:    s.images.RandomImageURL(),
	}

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	created, err := s.repo.GetByID(product.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("product %d missing immediately after insert", product.ID)
	}

	s.publish("product.created", created)
	return created, nil
}

// UpdateProduct replaces the mutable fields of an existing product and
// returns the row as persisted. Absent ids surface as not-found before any
// write happens.
func (s *ProductService) UpdateProduct(id uint, input *models.ProductInput) (*models.Product, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.ErrProductNotFound
	}

	if err := s.repo.Update(id, input); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("product %d missing immediately after update", id)
	}

	s.publish("product.updated", updated)
	return updated, nil
}

// DeleteProduct removes a product and returns a copy of the row as it was
// immediately before deletion.
func (s *ProductService) DeleteProduct(id uint) (*models.Product, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.ErrProductNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return nil, err
	}

	s.publish("product.deleted", existing)
	return existing, nil
}

func (s *ProductService) publish(action string, product *models.Product) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishProductEvent(action, product); err != nil {
		log.Printf("Failed to publish %s event for product %d: %v", action, product.ID, err)
	}
}
