package queries

import (
	"context"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads the order list straight from the database.
// Newest orders first, the way the admins scan the list.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order list queries.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the order list query with the requested filters applied
// in SQL. The overdue flag is computed against today's date.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := query.Filter()
	today := kernel.DateOf(time.Now().UTC())

	sql := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE 1=1
	`
	args := make([]any, 0, 8)

	if filter.Search != "" {
		sql += ` AND (external_id ILIKE ? OR tracking_number ILIKE ? OR product_name ILIKE ? OR back_name ILIKE ?)`
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern, pattern)
	}
	if filter.Status != order.StatusUnknown {
		sql += ` AND status = ?`
		args = append(args, filter.Status.String())
	}
	if filter.OrderType != order.TypeUnknown {
		sql += ` AND type = ?`
		args = append(args, filter.OrderType.String())
	}
	if filter.Marketplace != "" {
		sql += ` AND marketplace = ?`
		args = append(args, filter.Marketplace)
	}
	if filter.DateFrom != (kernel.Date{}) {
		sql += ` AND order_date >= ?`
		args = append(args, filter.DateFrom.Time())
	}
	if filter.DateTo != (kernel.Date{}) {
		sql += ` AND order_date <= ?`
		args = append(args, filter.DateTo.Time())
	}
	if filter.OnlyCustom {
		sql += ` AND (back_name <> '' OR back_number <> '')`
	}
	if filter.OnlyOverdue {
		sql += ` AND order_date < ? AND status NOT IN (?, ?, ?)`
		args = append(args,
			today.Time(),
			order.StatusCompleted.String(),
			order.StatusCanceled.String(),
			order.StatusReturned.String(),
		)
	}

	sql += ` ORDER BY order_date DESC, external_id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows, today)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
