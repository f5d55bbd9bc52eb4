package order

import (
	"errors"
	"fmt"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrReturnDateIsRequired is returned when a return is attempted without a
	// return date. RETURNED is only reachable with the date recorded.
	ErrReturnDateIsRequired = errors.New("return date is required to mark an order as returned")

	// ErrHistoryIsCorrupted is returned when a persisted order's history does not
	// satisfy the audit invariants (non-empty, last entry matching current status).
	ErrHistoryIsCorrupted = errors.New("order history does not match current status")
)

// Order represents one manufacturing job. It is the aggregate root that
// manages the production lifecycle from intake through the department
// pipeline to shipment, cancellation, or return.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and a valid order date
//   - External order ID, product reference, product name, and marketplace
//     are never empty; quantity is at least 1
//   - Status transitions follow the department stage table; terminal
//     statuses accept no further transitions
//   - History is append-only, never empty, and its last entry's status
//     always equals the current status
//   - A return date is present exactly when the status is RETURNED
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id kernel.UUID

	// externalID is the marketplace-assigned order number, human-entered and
	// not guaranteed unique across marketplaces.
	externalID string

	productID   string
	productName string
	size        string
	quantity    int

	// backName and backNumber hold the optional jersey customization.
	backName   string
	backNumber string

	marketplace    string
	expedition     string
	trackingNumber string

	orderDate kernel.Date
	orderType Type

	status     Status
	returnDate *kernel.Date
	history    []HistoryEntry

	isConstructed bool
}

// NewOrder creates a new Order with validation. The order starts in the
// initial status dictated by its type (PENDING_PACKING for STOCK,
// PENDING_SETTING for PRE_ORDER) and a single-entry history stamped with
// the acting user and creation time.
//
// Optional descriptive fields (expedition, tracking number, customization)
// are set afterwards via their setters; they carry no lifecycle semantics.
func NewOrder(
	id kernel.UUID,
	externalID string,
	productID string,
	productName string,
	size string,
	quantity int,
	marketplace string,
	orderDate kernel.Date,
	orderType Type,
	actor string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setExternalID(externalID),
		o.setProduct(productID, productName),
		o.setSize(size),
		o.setQuantity(quantity),
		o.setMarketplace(marketplace),
		o.setOrderDate(orderDate),
		o.setType(orderType),
	); err != nil {
		return nil, err
	}

	if actor == "" {
		return nil, errs.NewValueIsRequiredError("actor")
	}

	o.status = orderType.InitialStatus()
	o.history = []HistoryEntry{{Status: o.status, UpdatedBy: actor, UpdatedAt: now}}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without replaying its
// transitions. It revalidates identity and the audit invariants: history must
// be non-empty and its last entry must carry the current status, and a
// RETURNED order must have its return date.
func RestoreOrder(
	id kernel.UUID,
	externalID string,
	productID string,
	productName string,
	size string,
	quantity int,
	backName string,
	backNumber string,
	marketplace string,
	expedition string,
	trackingNumber string,
	orderDate kernel.Date,
	orderType Type,
	status Status,
	returnDate *kernel.Date,
	history []HistoryEntry,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setExternalID(externalID),
		o.setProduct(productID, productName),
		o.setSize(size),
		o.setQuantity(quantity),
		o.setMarketplace(marketplace),
		o.setOrderDate(orderDate),
		o.setType(orderType),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if len(history) == 0 || history[len(history)-1].Status != status {
		return nil, ErrHistoryIsCorrupted
	}

	if status == StatusReturned && returnDate == nil {
		return nil, ErrReturnDateIsRequired
	}

	o.backName = backName
	o.backNumber = backNumber
	o.expedition = expedition
	o.trackingNumber = trackingNumber
	o.status = status
	o.returnDate = returnDate
	o.history = append([]HistoryEntry(nil), history...)

	return o, nil
}

// Validate ensures the Order was created through a factory function.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their internal identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's internal identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// ExternalID returns the marketplace-assigned order number.
func (o *Order) ExternalID() string { return o.externalID }

// ProductID returns the catalog reference captured at creation.
// The reference may dangle if the product is later deleted; the name
// snapshot below keeps the order readable regardless.
func (o *Order) ProductID() string { return o.productID }

// ProductName returns the denormalized product name snapshot.
func (o *Order) ProductName() string { return o.productName }

// Size returns the garment size.
func (o *Order) Size() string { return o.size }

// Quantity returns the number of pieces ordered.
func (o *Order) Quantity() int { return o.quantity }

// BackName returns the optional jersey back-name customization.
func (o *Order) BackName() string { return o.backName }

// BackNumber returns the optional jersey back-number customization.
func (o *Order) BackNumber() string { return o.backNumber }

// Marketplace returns the sales channel the order came from.
func (o *Order) Marketplace() string { return o.marketplace }

// Expedition returns the courier service name, if known.
func (o *Order) Expedition() string { return o.expedition }

// TrackingNumber returns the courier tracking number (resi), if known.
func (o *Order) TrackingNumber() string { return o.trackingNumber }

// OrderDate returns the calendar date the order was placed.
func (o *Order) OrderDate() kernel.Date { return o.orderDate }

// Type returns the order classification (PRE_ORDER or STOCK).
func (o *Order) Type() Type { return o.orderType }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// ReturnDate returns the recorded return date, or nil unless the order
// has been returned.
func (o *Order) ReturnDate() *kernel.Date { return o.returnDate }

// History returns a copy of the append-only audit trail.
func (o *Order) History() []HistoryEntry {
	return append([]HistoryEntry(nil), o.history...)
}

// SetExpedition records the courier service name.
func (o *Order) SetExpedition(expedition string) {
	o.expedition = expedition
}

// SetTrackingNumber records the courier tracking number.
func (o *Order) SetTrackingNumber(trackingNumber string) {
	o.trackingNumber = trackingNumber
}

// SetCustomization records the jersey back-name and back-number.
func (o *Order) SetCustomization(backName, backNumber string) {
	o.backName = backName
	o.backNumber = backNumber
}

// StartStage moves the order from a department's pending status to its
// in-progress status and appends a history entry.
//
// Rejected when the order is not pending for the given department.
func (o *Order) StartStage(d Department, actor string, now time.Time) error {
	newStatus, err := d.Start(o.status)
	if err != nil {
		return err
	}

	o.applyTransition(newStatus, actor, now)
	return nil
}

// CompleteStage moves the order from a department's in-progress status to
// the next department's pending status (READY_TO_SHIP for PACKING) and
// appends a history entry.
//
// Rejected when the order is not in progress with the given department.
func (o *Order) CompleteStage(d Department, actor string, now time.Time) error {
	newStatus, err := d.Complete(o.status)
	if err != nil {
		return err
	}

	o.applyTransition(newStatus, actor, now)
	return nil
}

// ConfirmShipment moves the order from READY_TO_SHIP to COMPLETED.
// COMPLETED is terminal; no further transitions are accepted.
func (o *Order) ConfirmShipment(actor string, now time.Time) error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.applyTransition(newStatus, actor, now)
	return nil
}

// Cancel moves the order to CANCELED from any non-terminal status.
// CANCELED is terminal; no further transitions are accepted.
func (o *Order) Cancel(actor string, now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.applyTransition(newStatus, actor, now)
	return nil
}

// Return moves the order to RETURNED from any non-terminal status and
// records the supplied return date. The date is mandatory: a return
// without it is rejected before any state changes.
//
// RETURNED is terminal and locked; every later transition attempt fails.
func (o *Order) Return(returnDate kernel.Date, actor string, now time.Time) error {
	if err := returnDate.Validate(); err != nil {
		return ErrReturnDateIsRequired
	}

	newStatus, err := o.status.Return()
	if err != nil {
		return err
	}

	o.returnDate = &returnDate
	o.applyTransition(newStatus, actor, now)
	return nil
}

// SetStatus moves the order directly to an arbitrary target status.
// This is the manager override used to correct mistakes from the order list;
// it still appends history and still honors the hard rules:
//
//   - a terminal order cannot be edited at all
//   - RETURNED cannot be reached this way (Return records the date)
//   - the target must be one of the valid statuses and differ from the
//     current one
func (o *Order) SetStatus(target Status, actor string, now time.Time) error {
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is terminal and cannot be edited", o.status),
		)
	}

	if err := target.Validate(); err != nil {
		return err
	}

	if target == StatusReturned {
		return ErrReturnDateIsRequired
	}

	if target == o.status {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("order is already in status %s", target),
		)
	}

	o.applyTransition(target, actor, now)
	return nil
}

// applyTransition commits a validated status change: one status write,
// one history append. All transition methods funnel through here so the
// audit invariant holds by construction.
func (o *Order) applyTransition(newStatus Status, actor string, now time.Time) {
	o.status = newStatus
	o.history = append(o.history, HistoryEntry{Status: newStatus, UpdatedBy: actor, UpdatedAt: now})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setExternalID(externalID string) error {
	if externalID == "" {
		return errs.NewValueIsRequiredError("externalID")
	}
	o.externalID = externalID
	return nil
}

func (o *Order) setProduct(productID, productName string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	o.productID = productID
	o.productName = productName
	return nil
}

func (o *Order) setSize(size string) error {
	if size == "" {
		return errs.NewValueIsRequiredError("size")
	}
	o.size = size
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setMarketplace(marketplace string) error {
	if marketplace == "" {
		return errs.NewValueIsRequiredError("marketplace")
	}
	o.marketplace = marketplace
	return nil
}

func (o *Order) setOrderDate(orderDate kernel.Date) error {
	if err := orderDate.Validate(); err != nil {
		return err
	}
	o.orderDate = orderDate
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}
