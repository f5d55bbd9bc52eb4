package queries

import (
	"errors"

	"production/internal/core/domain/model/order"
	"production/internal/pkg/guard"
)

var ErrGetDepartmentQueueQueryIsNotConstructed = errors.New(
	"GetDepartmentQueueQuery must be created via NewGetDepartmentQueueQuery constructor",
)

// GetDepartmentQueueQuery retrieves one department's work queue: the orders
// waiting for it and the orders it currently has in progress.
type GetDepartmentQueueQuery struct {
	department order.Department

	guard guard.ConstructorGuard
}

// NewGetDepartmentQueueQuery creates a query for a department queue.
func NewGetDepartmentQueueQuery(department order.Department) (GetDepartmentQueueQuery, error) {
	if err := department.Validate(); err != nil {
		return GetDepartmentQueueQuery{}, err
	}
	return GetDepartmentQueueQuery{
		department: department,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDepartmentQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetDepartmentQueueQueryIsNotConstructed)
}

// Department returns the department whose queue is requested.
func (q GetDepartmentQueueQuery) Department() order.Department { return q.department }

// GetDepartmentQueueQueryResponse groups a department's queue by stage.
// Both lists are oldest first so the longest-waiting order is worked next.
type GetDepartmentQueueQueryResponse struct {
	Pending    []OrderResponse
	InProgress []OrderResponse
}
