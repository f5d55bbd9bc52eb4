package queries

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/errs"
	"production/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// OrderFilter is the optional filter set of the order list view. Zero values
// mean "no filter". The search term matches the external order ID, the
// tracking number, the product name, and the back name. OnlyCustom keeps
// orders carrying a back name or number; OnlyOverdue keeps open orders whose
// order date has passed.
type OrderFilter struct {
	Search      string
	Status      order.Status
	OrderType   order.Type
	Marketplace string
	DateFrom    kernel.Date
	DateTo      kernel.Date
	OnlyCustom  bool
	OnlyOverdue bool
}

// GetAllOrdersQuery retrieves the order list for the management views.
type GetAllOrdersQuery struct {
	filter OrderFilter

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query for the order list. Non-empty status
// and type values are validated; a date range must not be inverted.
func NewGetAllOrdersQuery(filter OrderFilter) (GetAllOrdersQuery, error) {
	if filter.Status != order.StatusUnknown {
		if err := filter.Status.Validate(); err != nil {
			return GetAllOrdersQuery{}, err
		}
	}
	if filter.OrderType != order.TypeUnknown {
		if err := filter.OrderType.Validate(); err != nil {
			return GetAllOrdersQuery{}, err
		}
	}
	if filter.DateFrom != (kernel.Date{}) && filter.DateTo != (kernel.Date{}) &&
		filter.DateTo.Before(filter.DateFrom) {
		return GetAllOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"date range is invalid",
			errors.New("dateTo is before dateFrom"),
		)
	}

	return GetAllOrdersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Filter returns the filter set of the query.
func (q GetAllOrdersQuery) Filter() OrderFilter { return q.filter }
