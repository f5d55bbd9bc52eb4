package order

import (
	"fmt"

	"production/internal/pkg/errs"
)

// Type classifies how an order enters the pipeline.
//
// PRE_ORDER goods are manufactured to order and start at the SETTING
// department. STOCK goods already exist and enter directly at PACKING.
type Type string

const (
	TypeUnknown  Type = ""
	TypePreOrder Type = "PRE_ORDER"
	TypeStock    Type = "STOCK"
)

// TypeFromString converts a raw string into a validated Type.
func TypeFromString(s string) (Type, error) {
	t := Type(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks if the Type is PRE_ORDER or STOCK.
func (t Type) Validate() error {
	if t != TypePreOrder && t != TypeStock {
		return errs.NewValueIsInvalidErrorWithCause(
			"order type is invalid",
			fmt.Errorf("%q is not a valid order type", string(t)),
		)
	}
	return nil
}

// String returns the persistence form of the type.
func (t Type) String() string {
	return string(t)
}

// Label returns the operator-facing label used in exports.
func (t Type) Label() string {
	if t == TypeStock {
		return "Stok"
	}
	return "Produksi"
}

// InitialStatus returns the status a freshly created order of this type
// starts in: PENDING_PACKING for STOCK, PENDING_SETTING otherwise.
func (t Type) InitialStatus() Status {
	if t == TypeStock {
		return StatusPendingPacking
	}
	return StatusPendingSetting
}
