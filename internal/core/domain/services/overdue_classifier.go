package services

import (
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
)

// OverdueClassifier decides which orders count as overdue.
//
// Business rules:
//   - An order is overdue when its order date lies strictly before today
//     and it is still in the pipeline
//   - Terminal orders (COMPLETED, CANCELED, RETURNED) are never overdue
//   - An order placed today is never overdue, whatever its status
//
// The comparison is calendar-day based; time of day is ignored.
type OverdueClassifier struct{}

// NewOverdueClassifier creates a new OverdueClassifier instance.
func NewOverdueClassifier() OverdueClassifier {
	return OverdueClassifier{}
}

// IsOverdue reports whether the order is overdue relative to today.
func (c OverdueClassifier) IsOverdue(o *order.Order, today kernel.Date) bool {
	if err := o.Validate(); err != nil {
		return false
	}
	return c.Classify(o.Status(), o.OrderDate(), today)
}

// Classify applies the overdue rule to a raw status and order date. The read
// side uses this form, which skips rebuilding the aggregate.
func (c OverdueClassifier) Classify(status order.Status, orderDate, today kernel.Date) bool {
	if status.IsTerminal() {
		return false
	}
	return orderDate.Before(today)
}

// FilterOverdue returns the subset of orders that are overdue relative to
// today, preserving input order.
func (c OverdueClassifier) FilterOverdue(orders []*order.Order, today kernel.Date) []*order.Order {
	var overdue []*order.Order
	for _, o := range orders {
		if c.IsOverdue(o, today) {
			overdue = append(overdue, o)
		}
	}
	return overdue
}
