// Package queries contains read operations over the database.
// Implements the Query side of CQRS: handlers read denormalized rows with
// raw SQL and return plain response structs, bypassing the aggregates.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/services"

	"github.com/google/uuid"
)

var overdueClassifier = services.NewOverdueClassifier()

// HistoryEntryResponse is one audit trail entry in an order read model.
type HistoryEntryResponse struct {
	Status      string    `json:"status"`
	StatusLabel string    `json:"statusLabel"`
	UpdatedBy   string    `json:"updatedBy"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OrderResponse is the order read model shared by the list, queue, and
// export queries. Labels are resolved server-side so every consumer shows
// the same Indonesian wording.
type OrderResponse struct {
	ID             kernel.UUID
	ExternalID     string
	ProductID      string
	ProductName    string
	Size           string
	Quantity       int
	BackName       string
	BackNumber     string
	Marketplace    string
	Expedition     string
	TrackingNumber string
	OrderDate      string
	Type           string
	TypeLabel      string
	Status         string
	StatusLabel    string
	ReturnDate     string
	IsOverdue      bool
	History        []HistoryEntryResponse
}

// orderColumns is the select list every order query shares. Order matters:
// scanOrderRow scans positionally.
const orderColumns = `
	id,
	external_id,
	product_id,
	product_name,
	size,
	quantity,
	back_name,
	back_number,
	marketplace,
	expedition,
	tracking_number,
	order_date,
	type,
	status,
	return_date,
	history
`

type historyEntryRow struct {
	Status    string    `json:"status"`
	UpdatedBy string    `json:"updatedBy"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func scanOrderRow(rows *sql.Rows, today kernel.Date) (OrderResponse, error) {
	var (
		resp       OrderResponse
		id         uuid.UUID
		orderDate  time.Time
		returnDate sql.NullTime
		historyRaw []byte
	)

	if err := rows.Scan(
		&id,
		&resp.ExternalID,
		&resp.ProductID,
		&resp.ProductName,
		&resp.Size,
		&resp.Quantity,
		&resp.BackName,
		&resp.BackNumber,
		&resp.Marketplace,
		&resp.Expedition,
		&resp.TrackingNumber,
		&orderDate,
		&resp.Type,
		&resp.Status,
		&returnDate,
		&historyRaw,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	resp.OrderDate = kernel.DateOf(orderDate).String()
	if returnDate.Valid {
		resp.ReturnDate = kernel.DateOf(returnDate.Time).String()
	}

	status := order.Status(resp.Status)
	resp.StatusLabel = status.Label()
	resp.TypeLabel = order.Type(resp.Type).Label()
	resp.IsOverdue = overdueClassifier.Classify(status, kernel.DateOf(orderDate), today)

	var entries []historyEntryRow
	if len(historyRaw) > 0 {
		if err = json.Unmarshal(historyRaw, &entries); err != nil {
			return OrderResponse{}, err
		}
	}
	resp.History = make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp.History = append(resp.History, HistoryEntryResponse{
			Status:      e.Status,
			StatusLabel: order.Status(e.Status).Label(),
			UpdatedBy:   e.UpdatedBy,
			UpdatedAt:   e.UpdatedAt,
		})
	}

	return resp, nil
}
