package services

import (
	"context"
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/pkg/rabbitmq"
)

// EventPublisher publishes product lifecycle events after successful writes.
// A nil publisher disables events entirely.
type EventPublisher interface {
	PublishProductEvent(event string, payload interface{}) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher
}

// NewProductService creates a new ProductService. events may be nil.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct persists a new product and announces it. The store assigns
// the identifier.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := s.repo.Create(ctx, product); err != nil {
		return err
	}
	s.publish(rabbitmq.EventProductCreated, product)
	return nil
}

// UpdateProduct replaces the fields of an existing product and returns the
// post-update record.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, product *models.Product) (*models.Product, error) {
	updated, err := s.repo.Update(ctx, id, product)
	if err != nil {
		return nil, err
	}
	s.publish(rabbitmq.EventProductUpdated, updated)
	return updated, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(rabbitmq.EventProductDeleted, map[string]string{"id": id})
	return nil
}

// publish is best-effort: a broker failure is logged and never surfaced to
// the request that triggered it.
func (s *ProductService) publish(event string, payload interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishProductEvent(event, payload); err != nil {
		log.Printf("Error publishing %s event: %v", event, err)
	}
}
