// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// rows, with the audit history stored as a JSONB column.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for the queries the panel actually runs: by status for the queues,
// by order date for the list and the reports, by marketplace for filters.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExternalID     string    `gorm:"index"`
	ProductID      string
	ProductName    string
	Size           string
	Quantity       int
	BackName       string
	BackNumber     string
	Marketplace    string `gorm:"index"`
	Expedition     string
	TrackingNumber string
	OrderDate      time.Time `gorm:"type:date;index"`
	Type           string
	Status         string     `gorm:"index"`
	ReturnDate     *time.Time `gorm:"type:date"`
	History        HistoryJSON
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// HistoryEntryDTO is one audit entry inside the history column. The JSON
// tags are the wire format shared with the read side and the CSV export.
type HistoryEntryDTO struct {
	Status    string    `json:"status"`
	UpdatedBy string    `json:"updatedBy"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HistoryJSON persists the append-only audit trail as a single JSONB value.
// A separate history table buys nothing here: the trail is only ever read
// and written together with its order.
type HistoryJSON []HistoryEntryDTO

// GormDataType tells gorm to create a jsonb column for the history.
func (HistoryJSON) GormDataType() string {
	return "jsonb"
}

// Value implements driver.Valuer, serializing the history to JSON.
func (h HistoryJSON) Value() (driver.Value, error) {
	if h == nil {
		h = HistoryJSON{}
	}
	return json.Marshal(h)
}

// Scan implements sql.Scanner, deserializing the history from JSON.
func (h *HistoryJSON) Scan(value any) error {
	if value == nil {
		*h = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	default:
		return fmt.Errorf("unsupported history column type %T", value)
	}
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var returnDate *time.Time
	if d := aggregate.ReturnDate(); d != nil {
		t := d.Time()
		returnDate = &t
	}

	history := aggregate.History()
	historyDTO := make(HistoryJSON, 0, len(history))
	for _, e := range history {
		historyDTO = append(historyDTO, HistoryEntryDTO{
			Status:    e.Status.String(),
			UpdatedBy: e.UpdatedBy,
			UpdatedAt: e.UpdatedAt,
		})
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		ExternalID:     aggregate.ExternalID(),
		ProductID:      aggregate.ProductID(),
		ProductName:    aggregate.ProductName(),
		Size:           aggregate.Size(),
		Quantity:       aggregate.Quantity(),
		BackName:       aggregate.BackName(),
		BackNumber:     aggregate.BackNumber(),
		Marketplace:    aggregate.Marketplace(),
		Expedition:     aggregate.Expedition(),
		TrackingNumber: aggregate.TrackingNumber(),
		OrderDate:      aggregate.OrderDate().Time(),
		Type:           aggregate.Type().String(),
		Status:         aggregate.Status().String(),
		ReturnDate:     returnDate,
		History:        historyDTO,
	}
}

// toDomain converts a database row back into an order aggregate using
// RestoreOrder, which revalidates the audit invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderType, err := order.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var returnDate *kernel.Date
	if dto.ReturnDate != nil {
		d := kernel.DateOf(*dto.ReturnDate)
		returnDate = &d
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, e := range dto.History {
		entryStatus, statusErr := order.StatusFromString(e.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		history = append(history, order.HistoryEntry{
			Status:    entryStatus,
			UpdatedBy: e.UpdatedBy,
			UpdatedAt: e.UpdatedAt,
		})
	}

	return order.RestoreOrder(
		id,
		dto.ExternalID,
		dto.ProductID,
		dto.ProductName,
		dto.Size,
		dto.Quantity,
		dto.BackName,
		dto.BackNumber,
		dto.Marketplace,
		dto.Expedition,
		dto.TrackingNumber,
		kernel.DateOf(dto.OrderDate),
		orderType,
		status,
		returnDate,
		history,
	)
}
