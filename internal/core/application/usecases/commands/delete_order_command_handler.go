package commands

import (
	"context"
	"log/slog"

	"printshop/internal/core/ports"
)

// DeleteOrderCommandHandler removes an order and its stored documents.
//
// Files go first, best-effort: an individual deletion failure is logged and
// skipped so a half-broken disk never blocks removal of the record. The
// record deletion itself is transactional in the repository.
type DeleteOrderCommandHandler struct {
	repo   ports.OrderRepository
	store  ports.FileStore
	logger *slog.Logger
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(
	repo ports.OrderRepository,
	store ports.FileStore,
	logger *slog.Logger,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		repo:   repo,
		store:  store,
		logger: logger.With("component", "delete_order_handler"),
	}
}

// Handle deletes the order. Returns an errs.ObjectNotFoundError when the
// order never existed, so a repeated delete surfaces as not-found.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.repo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	for _, f := range aggregate.Files() {
		if err := h.store.Delete(f.Name); err != nil {
			h.logger.ErrorContext(ctx, "Error deleting file", "file", f.Name, "error", err)
		}
	}

	if err := h.repo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Order deleted", "orderId", cmd.OrderID())
	return nil
}
