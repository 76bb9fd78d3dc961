package order

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// MaxSpecialInstructionsLength bounds the free-form instructions field.
const MaxSpecialInstructionsLength = 1000

// NewOrderID generates a public order identifier.
//
// The "ORD-<millis>" display format is kept for compatibility, with a random
// suffix appended so that concurrent submissions inside the same millisecond
// cannot collide.
func NewOrderID() string {
	suffix := make([]byte, 4)
	// rand.Read on the crypto source never fails on supported platforms.
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(suffix))
}

// Details carries the customer-supplied attributes of a print order.
// It is a plain value; Validate applies the domain rules before the
// values are locked into an aggregate.
type Details struct {
	FullName            string
	PhoneNumber         string
	PrintType           PrintType
	BindingColorType    *BindingColorType
	Copies              int
	PaperSize           PaperSize
	PrintSide           PrintSide
	SelectedPages       string
	ColorPages          string
	BwPages             string
	SpecialInstructions string
}

// Validate checks required fields, enumeration membership, and bounds.
// FullName and PhoneNumber are compared after trimming.
func (d Details) Validate() error {
	if strings.TrimSpace(d.FullName) == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	if strings.TrimSpace(d.PhoneNumber) == "" {
		return errs.NewValueIsRequiredError("phoneNumber")
	}
	if err := d.PrintType.Validate(); err != nil {
		return err
	}
	if d.BindingColorType != nil {
		if err := d.BindingColorType.Validate(); err != nil {
			return err
		}
	}
	if d.Copies < 1 {
		return errs.NewValueIsInvalidErrorWithCause("copies",
			fmt.Errorf("%d is not greater than 0", d.Copies))
	}
	if err := d.PaperSize.Validate(); err != nil {
		return err
	}
	if err := d.PrintSide.Validate(); err != nil {
		return err
	}
	if len(d.SpecialInstructions) > MaxSpecialInstructionsLength {
		return errs.NewValueIsOutOfRangeError("specialInstructions",
			len(d.SpecialInstructions), 0, MaxSpecialInstructionsLength)
	}
	return nil
}

// normalized returns a copy with whitespace trimmed and defaults applied.
func (d Details) normalized() Details {
	d.FullName = strings.TrimSpace(d.FullName)
	d.PhoneNumber = strings.TrimSpace(d.PhoneNumber)
	if d.SelectedPages == "" {
		d.SelectedPages = "all"
	}
	return d
}

// Order is the aggregate root for a print order. It owns the uploaded file
// records and manages the status workflow from submission to completion.
//
// Invariants:
//   - valid internal and public identifiers
//   - customer details pass Details.Validate
//   - at least one file at creation, each individually valid
//   - non-negative total cost, computed once at creation
//   - status transitions follow the transition table
type Order struct {
	id      kernel.UUID
	orderID string

	details Details
	files   []StoredFile

	status    Status
	totalCost float64

	orderDate time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order in pending status. The caller supplies the
// already-computed total cost; the aggregate never recomputes it on later
// mutation.
func NewOrder(id kernel.UUID, orderID string, d Details, files []StoredFile, totalCost float64) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderId")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errs.NewValueIsRequiredError("files")
	}
	for _, f := range files {
		if err := f.Validate(); err != nil {
			return nil, err
		}
	}
	if totalCost < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalCost",
			fmt.Errorf("%v is negative", totalCost))
	}

	now := time.Now()
	return &Order{
		id:            id,
		orderID:       orderID,
		details:       d.normalized(),
		files:         files,
		status:        StatusPending,
		totalCost:     totalCost,
		orderDate:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running
// creation-time rules that only apply to new submissions.
func RestoreOrder(
	id kernel.UUID,
	orderID string,
	d Details,
	files []StoredFile,
	status Status,
	totalCost float64,
	orderDate time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderId")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		orderID:       orderID,
		details:       d,
		files:         files,
		status:        status,
		totalCost:     totalCost,
		orderDate:     orderDate,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ChangeStatus moves the order to next, refreshing the update timestamp.
// The target status must belong to the closed enumeration and the move
// must be allowed by the transition table.
func (o *Order) ChangeStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if !o.status.CanTransitionTo(next) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("transition from %s to %s is not allowed", o.status, next))
	}

	o.status = next
	o.updatedAt = time.Now()
	return nil
}

// FileByName returns the stored file with the given storage name,
// or false when the order owns no such file.
func (o *Order) FileByName(name string) (StoredFile, bool) {
	for _, f := range o.files {
		if f.Name == name {
			return f, true
		}
	}
	return StoredFile{}, false
}

// IsEqual compares two orders by their internal identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the internal identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// OrderID returns the public "ORD-..." identifier.
func (o *Order) OrderID() string { return o.orderID }

// Details returns the customer-supplied attributes.
func (o *Order) Details() Details { return o.details }

// Files returns the owned file records, in upload order.
func (o *Order) Files() []StoredFile { return o.files }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// TotalCost returns the cost computed at creation.
func (o *Order) TotalCost() float64 { return o.totalCost }

// OrderDate returns the creation timestamp.
func (o *Order) OrderDate() time.Time { return o.orderDate }

// UpdatedAt returns the timestamp of the last mutating write.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }
