package ports

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product to the catalog.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves the whole catalog, sorted by name.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// Delete removes a product from the catalog. Orders keep their
	// product name snapshot.
	Delete(ctx context.Context, id kernel.UUID) error
}
