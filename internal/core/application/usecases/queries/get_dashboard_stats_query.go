package queries

import (
	"errors"
	"time"

	"printshop/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery requests the aggregated admin dashboard view:
// order volumes over several time windows, revenue, status and print-type
// breakdowns, the most recent orders, and a daily series.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates the parameterless dashboard query.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// OverviewStats summarizes order volume and revenue.
// Revenue only counts completed orders.
type OverviewStats struct {
	TotalOrders  int64   `json:"totalOrders"`
	TodayOrders  int64   `json:"todayOrders"`
	WeekOrders   int64   `json:"weekOrders"`
	MonthOrders  int64   `json:"monthOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
	MonthRevenue float64 `json:"monthRevenue"`
}

// StatusCount is the number of orders currently in one lifecycle state.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// RecentOrder is the condensed row shown in the dashboard's recent list.
type RecentOrder struct {
	OrderID   string    `json:"orderId"`
	FullName  string    `json:"fullName"`
	PrintType string    `json:"printType"`
	Status    string    `json:"status"`
	TotalCost float64   `json:"totalCost"`
	OrderDate time.Time `json:"orderDate"`
}

// PrintTypeStats aggregates volume and revenue per print type.
type PrintTypeStats struct {
	PrintType string  `json:"printType"`
	Count     int64   `json:"count"`
	Revenue   float64 `json:"revenue"`
}

// DailyCount is one day of the rolling seven-day submission series.
// The series always holds one entry per calendar day, zeroes included.
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// DashboardStatsResponse is the complete dashboard read model.
type DashboardStatsResponse struct {
	Overview     OverviewStats    `json:"overview"`
	OrderStatus  []StatusCount    `json:"orderStatus"`
	RecentOrders []RecentOrder    `json:"recentOrders"`
	OrdersByType []PrintTypeStats `json:"ordersByType"`
	DailyOrders  []DailyCount     `json:"dailyOrders"`
}
