// Package productrepo persists catalog products.
package productrepo

import (
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for catalog products.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"index"`
	Category    string
	Image       string
	Description string
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Category:    aggregate.Category().String(),
		Image:       aggregate.Image(),
		Description: aggregate.Description(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := product.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, category, dto.Image, dto.Description)
}
