package ports

import (
	"context"

	"printshop/internal/core/domain/model/order"
)

// OrderRepository defines the write-side persistence contract for order
// aggregates. Read-side listing and aggregation live in the query handlers,
// which own their own read models.
type OrderRepository interface {
	// Add persists a new order aggregate together with its file records.
	// Public order ID uniqueness is enforced by the storage layer; a
	// collision surfaces as gorm.ErrDuplicatedKey from the adapter.
	Add(ctx context.Context, aggregate *order.Order) error

	// GetByOrderID retrieves an order by its public "ORD-..." identifier,
	// including file records with storage locators. Returns an
	// errs.ObjectNotFoundError when no such order exists.
	GetByOrderID(ctx context.Context, orderID string) (*order.Order, error)

	// UpdateStatus atomically writes the new status and refreshes the
	// update timestamp in a single storage operation, then returns the
	// refreshed aggregate. Concurrent updates to the same order are
	// serialized by the storage layer; the last writer wins.
	UpdateStatus(ctx context.Context, orderID string, status order.Status) (*order.Order, error)

	// Delete removes the order record and its file records in one
	// transaction. Returns an errs.ObjectNotFoundError when absent.
	Delete(ctx context.Context, orderID string) error

	// IsFileReferenced reports whether any order owns a file record with
	// the given storage name. Used by the orphan-file sweep.
	IsFileReferenced(ctx context.Context, storageName string) (bool, error)
}
