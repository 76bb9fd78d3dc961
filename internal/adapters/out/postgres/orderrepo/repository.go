package orderrepo

import (
	"context"
	"errors"
	"time"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// Single-aggregate mutations run as one SQL statement or one transaction,
// so concurrent updates and deletions against the same order serialize at
// the database and never interleave into an inconsistent record.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order together with its file rows.
// A public-ID collision surfaces as gorm.ErrDuplicatedKey via the
// driver's error translation.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByOrderID retrieves an order by its public identifier, file rows included.
func (r *GormOrderRepository) GetByOrderID(ctx context.Context, orderID string) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Files").First(&dto, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus writes the new status and refreshed timestamp in a single
// UPDATE, then reloads the aggregate. The single-statement write is what
// serializes concurrent updates; the last writer wins.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context, orderID string, status order.Status,
) (*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_id = ?", orderID).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("orderId", orderID)
	}

	return r.GetByOrderID(ctx, orderID)
}

// Delete removes the order row and its file rows in one transaction.
func (r *GormOrderRepository) Delete(ctx context.Context, orderID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dto OrderDTO
		if err := tx.Select("id").First(&dto, "order_id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("orderId", orderID)
			}
			return err
		}

		if err := tx.Where("order_ref = ?", dto.ID).Delete(&FileDTO{}).Error; err != nil {
			return err
		}
		return tx.Delete(&OrderDTO{}, "id = ?", dto.ID).Error
	})
}

// IsFileReferenced reports whether any order owns a file row with the
// given storage name.
func (r *GormOrderRepository) IsFileReferenced(ctx context.Context, storageName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&FileDTO{}).
		Where("name = ?", storageName).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
