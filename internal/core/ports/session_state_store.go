package ports

import (
	"context"

	"production/internal/core/domain/model/kernel"
)

// OrderDraft holds an admin's half-finished intake form so it survives a
// page reload or a switch to another device. Fields mirror the intake form
// and are unvalidated free text until the order is actually created.
type OrderDraft struct {
	ExternalID  string `json:"orderId"`
	ProductID   string `json:"productId"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
	BackName    string `json:"backName"`
	BackNumber  string `json:"backNumber"`
	Marketplace string `json:"marketplace"`
	Expedition  string `json:"expedition"`
	OrderDate   string `json:"orderDate"`
	OrderType   string `json:"type"`
}

// SessionStateStore keeps per-account UI scratch state with a bounded
// lifetime: the last view the account had open and an in-progress order
// draft. Absence is not an error; lookups return ok=false when nothing
// is stored.
type SessionStateStore interface {
	// SetLastView remembers the view the account navigated to.
	SetLastView(ctx context.Context, accountID kernel.UUID, view string) error

	// GetLastView returns the remembered view, or ok=false when none.
	GetLastView(ctx context.Context, accountID kernel.UUID) (view string, ok bool, err error)

	// SetOrderDraft stores the account's in-progress intake form.
	SetOrderDraft(ctx context.Context, accountID kernel.UUID, draft OrderDraft) error

	// GetOrderDraft returns the stored draft, or ok=false when none.
	GetOrderDraft(ctx context.Context, accountID kernel.UUID) (draft OrderDraft, ok bool, err error)

	// ClearOrderDraft drops the stored draft, keeping the last view.
	ClearOrderDraft(ctx context.Context, accountID kernel.UUID) error

	// Clear drops all scratch state for the account. Called on logout.
	Clear(ctx context.Context, accountID kernel.UUID) error
}
