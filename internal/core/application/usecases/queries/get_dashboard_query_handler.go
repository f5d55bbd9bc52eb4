package queries

import (
	"context"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDashboardQueryHandler computes the dashboard from two aggregate
// queries: counts per status and the overdue count.
type GetDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardQueryHandler creates a handler for dashboard queries.
func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

// Handle executes the dashboard query against today's date.
func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	statusCounts := make(map[string]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err = rows.Scan(&status, &count); err != nil {
			return GetDashboardQueryResponse{}, err
		}
		statusCounts[status] = count
	}
	if err = rows.Err(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	today := kernel.DateOf(time.Now().UTC())
	var overdue int
	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE order_date < ?
		  AND status NOT IN (?, ?, ?)
	`, today.Time(),
		order.StatusCompleted.String(),
		order.StatusCanceled.String(),
		order.StatusReturned.String(),
	).Scan(&overdue).Error
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	return buildDashboard(statusCounts, overdue), nil
}
