// Package ports defines repository and infrastructure interfaces for the
// production tracking domain. These interfaces establish contracts between
// the domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including its
	// appended history entries.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, newest order date first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByStatuses retrieves orders currently in any of the given statuses,
	// oldest order date first. Used for the department work queues.
	GetByStatuses(ctx context.Context, statuses []order.Status) ([]*order.Order, error)

	// Delete removes an order permanently, history included.
	Delete(ctx context.Context, id kernel.UUID) error
}
