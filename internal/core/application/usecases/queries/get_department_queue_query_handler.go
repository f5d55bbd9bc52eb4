package queries

import (
	"context"
	"time"

	"production/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetDepartmentQueueQueryHandler reads one department's queue from the
// database, split into pending and in-progress.
type GetDepartmentQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetDepartmentQueueQueryHandler creates a handler for queue queries.
func NewGetDepartmentQueueQueryHandler(db *gorm.DB) GetDepartmentQueueQueryHandler {
	return GetDepartmentQueueQueryHandler{db: db}
}

// Handle executes the queue query. Oldest order date first, so the list
// reads top-to-bottom as a work plan.
func (h GetDepartmentQueueQueryHandler) Handle(
	ctx context.Context,
	query GetDepartmentQueueQuery,
) (GetDepartmentQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDepartmentQueueQueryResponse{}, err
	}

	stage, err := query.Department().Stage()
	if err != nil {
		return GetDepartmentQueueQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status IN (?, ?)
		ORDER BY order_date, external_id
	`, stage.Pending.String(), stage.InProgress.String()).Rows()
	if err != nil {
		return GetDepartmentQueueQueryResponse{}, err
	}
	defer rows.Close()

	today := kernel.DateOf(time.Now().UTC())
	response := GetDepartmentQueueQueryResponse{
		Pending:    make([]OrderResponse, 0),
		InProgress: make([]OrderResponse, 0),
	}

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows, today)
		if scanErr != nil {
			return GetDepartmentQueueQueryResponse{}, scanErr
		}
		if resp.Status == stage.Pending.String() {
			response.Pending = append(response.Pending, resp)
		} else {
			response.InProgress = append(response.InProgress, resp)
		}
	}

	if err = rows.Err(); err != nil {
		return GetDepartmentQueueQueryResponse{}, err
	}

	return response, nil
}
