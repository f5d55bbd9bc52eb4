package product

import (
	"fmt"

	"production/internal/pkg/errs"
)

// Category classifies a catalog product by garment kind.
type Category string

const (
	CategoryUnknown Category = ""
	CategoryJersey  Category = "Jersey"
	CategoryKemeja  Category = "Kemeja"
	CategoryKaos    Category = "Kaos"
	CategoryJaket   Category = "Jaket"
)

// AllCategories returns every valid category in catalog display order.
func AllCategories() []Category {
	return []Category{CategoryJersey, CategoryKemeja, CategoryKaos, CategoryJaket}
}

// CategoryFromString parses a category from its string form.
func CategoryFromString(s string) (Category, error) {
	c := Category(s)
	if err := c.Validate(); err != nil {
		return CategoryUnknown, err
	}
	return c, nil
}

// Validate checks that the category is one of the known values.
func (c Category) Validate() error {
	switch c {
	case CategoryJersey, CategoryKemeja, CategoryKaos, CategoryJaket:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"category is invalid",
		fmt.Errorf("%q is not a known product category", string(c)),
	)
}

func (c Category) String() string {
	if c.Validate() != nil {
		return "Unknown"
	}
	return string(c)
}
