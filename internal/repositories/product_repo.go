package repositories

import (
	"context"
	"errors"

	"katalog/internal/models"
)

// ErrNotFound is returned by repository lookups when no product has the given
// ID. Handlers inspect for it with errors.Is; any other error propagates to
// the terminal error handler.
var ErrNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id string, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}
