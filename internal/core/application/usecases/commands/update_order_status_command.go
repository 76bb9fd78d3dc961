package commands

import (
	"errors"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents an admin request to move an order
// to a new lifecycle state.
type UpdateOrderStatusCommand struct {
	orderID string
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand parses the raw status against the closed
// enumeration and builds the command. Rejects unknown statuses before any
// storage access happens.
func NewUpdateOrderStatusCommand(orderID, rawStatus string) (UpdateOrderStatusCommand, error) {
	if orderID == "" {
		return UpdateOrderStatusCommand{}, errs.NewValueIsRequiredError("orderId")
	}

	status, err := order.ParseStatus(rawStatus)
	if err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the public identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() string {
	return c.orderID
}

// Status returns the target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}
