package repositories

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"katalog/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It mirrors the Mongo implementation's semantics, including the malformed-ID
// behavior, so handler tests and broker-less development see the same contract.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("invalid product id %q: %w", id, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

// Create adds a new product, assigning a fresh identifier when absent.
func (r *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	r.products[product.ID.Hex()] = *product
	return nil
}

// Update replaces the mutable fields of an existing product.
func (r *MockProductRepository) Update(ctx context.Context, id string, product *models.Product) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id %q: %w", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	current.ID = oid
	current.Name = product.Name
	current.Price = product.Price
	current.Image = product.Image
	r.products[id] = current

	return &current, nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return fmt.Errorf("invalid product id %q: %w", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.products, id)
	return nil
}
