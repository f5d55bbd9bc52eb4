package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetReportQueryHandler computes period totals with a single grouped query.
type GetReportQueryHandler struct {
	db *gorm.DB
}

// NewGetReportQueryHandler creates a handler for report queries.
func NewGetReportQueryHandler(db *gorm.DB) GetReportQueryHandler {
	return GetReportQueryHandler{db: db}
}

// Handle executes the report query for the requested period.
func (h GetReportQueryHandler) Handle(ctx context.Context, query GetReportQuery) (GetReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetReportQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			marketplace,
			status,
			type,
			COUNT(*),
			COALESCE(SUM(quantity), 0)
		FROM orders
		WHERE order_date >= ? AND order_date <= ?
		GROUP BY marketplace, status, type
	`, query.From().Time(), query.To().Time()).Rows()
	if err != nil {
		return GetReportQueryResponse{}, err
	}
	defer rows.Close()

	grouped := make([]reportRow, 0)
	for rows.Next() {
		var row reportRow
		if err = rows.Scan(&row.Marketplace, &row.Status, &row.Type, &row.Orders, &row.Pieces); err != nil {
			return GetReportQueryResponse{}, err
		}
		grouped = append(grouped, row)
	}
	if err = rows.Err(); err != nil {
		return GetReportQueryResponse{}, err
	}

	return buildReport(query.From(), query.To(), grouped), nil
}
