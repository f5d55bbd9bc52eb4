// Package product holds the catalog side of the system: the garments the
// workshop produces. Orders snapshot the product name at creation, so a
// product can be renamed or deleted without rewriting order history.
package product

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory functions.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is a catalog entry. Image and description are optional
// presentation fields.
type Product struct {
	id          kernel.UUID
	name        string
	category    Category
	image       string
	description string

	isConstructed bool
}

// NewProduct creates a new Product with validation.
func NewProduct(id kernel.UUID, name string, category Category, image, description string) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCategory(category),
	); err != nil {
		return nil, err
	}

	p.image = image
	p.description = description

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
func RestoreProduct(id kernel.UUID, name string, category Category, image, description string) (*Product, error) {
	return NewProduct(id, name, category, image, description)
}

// Validate ensures the Product was created through a factory function.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's identifier.
func (p *Product) ID() kernel.UUID { return p.id }

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// Category returns the garment category.
func (p *Product) Category() Category { return p.category }

// Image returns the catalog image reference, possibly empty.
func (p *Product) Image() string { return p.image }

// Description returns the free-text description, possibly empty.
func (p *Product) Description() string { return p.description }

// Rename changes the product name. Existing orders keep their snapshot.
func (p *Product) Rename(name string) error {
	return p.setName(name)
}

// Recategorize changes the garment category.
func (p *Product) Recategorize(category Category) error {
	return p.setCategory(category)
}

// SetImage replaces the catalog image reference.
func (p *Product) SetImage(image string) {
	p.image = image
}

// SetDescription replaces the free-text description.
func (p *Product) SetDescription(description string) {
	p.description = description
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}
