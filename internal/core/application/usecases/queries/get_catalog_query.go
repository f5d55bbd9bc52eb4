package queries

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery retrieves the whole product catalog.
type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates a parameterless catalog query.
func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// GetCatalogQueryResponse is one catalog product read model.
type GetCatalogQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Category    string
	Image       string
	Description string
}
