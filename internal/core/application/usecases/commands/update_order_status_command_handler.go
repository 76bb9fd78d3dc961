package commands

import (
	"context"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies admin status changes.
// The write itself is a single atomic repository operation; the transition
// table is consulted against the currently stored status first.
type UpdateOrderStatusCommandHandler struct {
	repo ports.OrderRepository
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(repo ports.OrderRepository) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{repo: repo}
}

// Handle validates the transition and applies it, returning the refreshed
// aggregate. Returns an errs.ObjectNotFoundError for unknown orders.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current, err := h.repo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !current.Status().CanTransitionTo(cmd.Status()) {
		return nil, errs.NewValueIsInvalidError("status transition")
	}

	return h.repo.UpdateStatus(ctx, cmd.OrderID(), cmd.Status())
}
