package queries

import (
	"context"

	"production/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCatalogQueryHandler reads the product catalog from the database.
type GetCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetCatalogQueryHandler creates a handler for catalog queries.
func NewGetCatalogQueryHandler(db *gorm.DB) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{db: db}
}

// Handle executes the catalog query, sorted by name.
func (h GetCatalogQueryHandler) Handle(ctx context.Context, query GetCatalogQuery) ([]GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetCatalogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			category,
			image,
			description
		FROM products
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCatalogQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name, &resp.Category, &resp.Image, &resp.Description); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = productID
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
