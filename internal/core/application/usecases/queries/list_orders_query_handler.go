package queries

import (
	"context"

	"gorm.io/gorm"
)

// Pagination describes the page window of a listing response.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
}

// ListOrdersResponse is the paginated admin listing read model.
type ListOrdersResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Pagination Pagination      `json:"pagination"`
}

// ListOrdersQueryHandler serves the paginated admin order listing.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns one page of orders plus the pagination envelope.
// The total count runs against the same filter as the page itself.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context, query ListOrdersQuery,
) (ListOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersResponse{}, err
	}

	filtered := func() *gorm.DB {
		tx := h.db.WithContext(ctx).Model(&orderRow{})
		if query.Status() != "" {
			tx = tx.Where("status = ?", query.Status())
		}
		return tx
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return ListOrdersResponse{}, err
	}

	rows := make([]orderRow, 0, query.Limit())
	err := filtered().
		Preload("Files").
		Order(query.OrderBy()).
		Offset(query.Offset()).
		Limit(query.Limit()).
		Find(&rows).Error
	if err != nil {
		return ListOrdersResponse{}, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, toOrderResponse(row))
	}

	pages := int((total + int64(query.Limit()) - 1) / int64(query.Limit()))

	return ListOrdersResponse{
		Orders: orders,
		Pagination: Pagination{
			Current: query.Page(),
			Pages:   pages,
			Total:   total,
			Limit:   query.Limit(),
		},
	}, nil
}
