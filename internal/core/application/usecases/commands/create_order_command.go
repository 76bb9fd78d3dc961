package commands

import (
	"errors"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a validated order submission: the customer
// details plus the uploaded documents awaiting storage.
//
// Input-shape validation happens here, before any side effect: a command
// that constructs successfully is safe to hand to the file store.
type CreateOrderCommand struct {
	details order.Details
	uploads []ports.Upload

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand builds a command from customer details and uploads.
// Requires valid details and at least one file.
func NewCreateOrderCommand(details order.Details, uploads []ports.Upload) (CreateOrderCommand, error) {
	if err := details.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if len(uploads) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("files")
	}

	return CreateOrderCommand{
		details: details,
		uploads: uploads,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Details returns the customer-supplied order attributes.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

// Uploads returns the files to store, in submission order.
func (c CreateOrderCommand) Uploads() []ports.Upload {
	return c.uploads
}
