package commands

import (
	"errors"

	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents an admin request to remove an order and
// every document stored with it.
type DeleteOrderCommand struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand builds the command for the given public order ID.
func NewDeleteOrderCommand(orderID string) (DeleteOrderCommand, error) {
	if orderID == "" {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredError("orderId")
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the public identifier of the order to delete.
func (c DeleteOrderCommand) OrderID() string {
	return c.orderID
}
