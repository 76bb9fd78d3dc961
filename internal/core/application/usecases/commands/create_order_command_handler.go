package commands

import (
	"context"
	"log/slog"
	"sync"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"
	"printshop/internal/core/ports"
)

// CreateOrderResult is the minimal projection returned to the client after
// a successful submission. The file list stays internal.
type CreateOrderResult struct {
	ID        kernel.UUID
	OrderID   string
	TotalCost float64
	Status    order.Status
}

// CreateOrderCommandHandler stores the uploaded documents, prices the order,
// and persists the aggregate.
//
// Creation is not atomic across the file store and the database: files are
// written first, and a persistence failure triggers best-effort deletion of
// every just-stored file. Cleanup failures are logged, never escalated, and
// never change the error kind surfaced to the caller.
type CreateOrderCommandHandler struct {
	repo   ports.OrderRepository
	store  ports.FileStore
	logger *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order submissions.
func NewCreateOrderCommandHandler(
	repo ports.OrderRepository,
	store ports.FileStore,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		repo:   repo,
		store:  store,
		logger: logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order submission command.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateOrderCommand,
) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	files, err := h.storeAll(ctx, cmd.Uploads())
	if err != nil {
		h.cleanup(ctx, files)
		return CreateOrderResult{}, err
	}

	details := cmd.Details()
	totalCost := services.EstimateCost(details.PrintType, details.SelectedPages, details.Copies)

	o, err := order.NewOrder(kernel.NewUUID(), order.NewOrderID(), details, files, totalCost)
	if err != nil {
		h.cleanup(ctx, files)
		return CreateOrderResult{}, err
	}

	if err = h.repo.Add(ctx, o); err != nil {
		h.cleanup(ctx, files)
		return CreateOrderResult{}, err
	}

	h.logger.InfoContext(ctx, "Order created",
		"orderId", o.OrderID(), "files", len(files), "totalCost", o.TotalCost())

	return CreateOrderResult{
		ID:        o.ID(),
		OrderID:   o.OrderID(),
		TotalCost: o.TotalCost(),
		Status:    o.Status(),
	}, nil
}

// storeAll writes every upload concurrently and waits for all of them to
// settle before deciding the outcome. On failure it returns the files that
// did make it to disk so the caller can clean them up, together with the
// first save error.
func (h *CreateOrderCommandHandler) storeAll(
	ctx context.Context, uploads []ports.Upload,
) ([]order.StoredFile, error) {
	type saveResult struct {
		file order.StoredFile
		err  error
	}

	results := make([]saveResult, len(uploads))
	var wg sync.WaitGroup
	for i, upload := range uploads {
		wg.Add(1)
		go func() {
			defer wg.Done()
			file, err := h.store.Save(ctx, upload)
			results[i] = saveResult{file: file, err: err}
		}()
	}
	wg.Wait()

	files := make([]order.StoredFile, 0, len(uploads))
	var firstErr error
	for _, res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		files = append(files, res.file)
	}

	if firstErr != nil {
		return files, firstErr
	}
	return files, nil
}

// cleanup best-effort-deletes already-stored files after a failed creation.
func (h *CreateOrderCommandHandler) cleanup(ctx context.Context, files []order.StoredFile) {
	for _, f := range files {
		if err := h.store.Delete(f.Name); err != nil {
			h.logger.ErrorContext(ctx, "File cleanup failed", "file", f.Name, "error", err)
		}
	}
}
