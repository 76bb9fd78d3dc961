package queries

import (
	"errors"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	// DefaultPageLimit is applied when the client omits the limit parameter.
	DefaultPageLimit = 10
	// MaxPageLimit caps how many orders a single page may return.
	MaxPageLimit = 100
)

// sortColumns whitelists client-facing sort keys and maps them to columns.
// Anything outside this map is rejected, never interpolated into SQL.
var sortColumns = map[string]string{
	"orderDate": "order_date",
	"updatedAt": "updated_at",
	"totalCost": "total_cost",
	"status":    "status",
	"fullName":  "full_name",
	"printType": "print_type",
	"copies":    "copies",
}

// ListOrdersParams carries the raw, untrusted listing parameters.
type ListOrdersParams struct {
	Page      int
	Limit     int
	Status    string
	SortBy    string
	SortOrder string
}

// ListOrdersQuery is the validated admin listing request: pagination,
// optional status filter, and a whitelisted sort.
type ListOrdersQuery struct {
	page       int
	limit      int
	status     string
	sortColumn string
	descending bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery validates and normalizes listing parameters.
// Page and limit fall back to sane defaults, an empty sort means newest
// first, and unknown statuses, sort keys or sort orders are rejected.
func NewListOrdersQuery(params ListOrdersParams) (ListOrdersQuery, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}

	limit := params.Limit
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	status := params.Status
	if status != "" {
		if _, err := order.ParseStatus(status); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "orderDate"
	}
	column, ok := sortColumns[sortBy]
	if !ok {
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("sortBy")
	}

	var descending bool
	switch params.SortOrder {
	case "asc":
		descending = false
	case "", "desc":
		descending = true
	default:
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("sortOrder")
	}

	return ListOrdersQuery{
		page:       page,
		limit:      limit,
		status:     status,
		sortColumn: column,
		descending: descending,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// Status returns the status filter, empty when no filter applies.
func (q ListOrdersQuery) Status() string {
	return q.status
}

// OrderBy returns the SQL ordering clause derived from the whitelist.
func (q ListOrdersQuery) OrderBy() string {
	if q.descending {
		return q.sortColumn + " DESC"
	}
	return q.sortColumn + " ASC"
}

// Offset returns how many rows precede the requested page.
func (q ListOrdersQuery) Offset() int {
	return (q.page - 1) * q.limit
}
