package queries

import (
	"context"
	"time"

	"printshop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// recentOrdersLimit bounds the dashboard's recent-activity list.
const recentOrdersLimit = 10

// dailySeriesDays is the length of the rolling submission series.
const dailySeriesDays = 7

// GetDashboardStatsQueryHandler aggregates order statistics for the admin
// dashboard. All window boundaries are computed from a single "now" so the
// counters within one response agree with each other.
//
// The week counter uses the current calendar week starting Sunday, while the
// daily series covers a rolling seven-day window. The two deliberately answer
// different questions and may disagree early in the week.
type GetDashboardStatsQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard queries.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db, now: time.Now}
}

// Handle assembles the full dashboard read model.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context, query GetDashboardStatsQuery,
) (DashboardStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardStatsResponse{}, err
	}

	now := h.now()

	overview, err := h.overview(ctx, now)
	if err != nil {
		return DashboardStatsResponse{}, err
	}

	statusCounts, err := h.statusCounts(ctx)
	if err != nil {
		return DashboardStatsResponse{}, err
	}

	recent, err := h.recentOrders(ctx)
	if err != nil {
		return DashboardStatsResponse{}, err
	}

	byType, err := h.ordersByType(ctx)
	if err != nil {
		return DashboardStatsResponse{}, err
	}

	daily, err := h.dailyOrders(ctx, now)
	if err != nil {
		return DashboardStatsResponse{}, err
	}

	return DashboardStatsResponse{
		Overview:     overview,
		OrderStatus:  statusCounts,
		RecentOrders: recent,
		OrdersByType: byType,
		DailyOrders:  daily,
	}, nil
}

func (h GetDashboardStatsQueryHandler) overview(
	ctx context.Context, now time.Time,
) (OverviewStats, error) {
	var stats OverviewStats

	counts := []struct {
		dest  *int64
		since time.Time
	}{
		{&stats.TotalOrders, time.Time{}},
		{&stats.TodayOrders, startOfDay(now)},
		{&stats.WeekOrders, startOfWeek(now)},
		{&stats.MonthOrders, startOfMonth(now)},
	}

	for _, c := range counts {
		tx := h.db.WithContext(ctx).Model(&orderRow{})
		if !c.since.IsZero() {
			tx = tx.Where("order_date >= ?", c.since)
		}
		if err := tx.Count(c.dest).Error; err != nil {
			return OverviewStats{}, err
		}
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_cost), 0)
		FROM orders
		WHERE status = ?
	`, order.StatusCompleted).Scan(&stats.TotalRevenue).Error
	if err != nil {
		return OverviewStats{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_cost), 0)
		FROM orders
		WHERE status = ? AND order_date >= ?
	`, order.StatusCompleted, startOfMonth(now)).Scan(&stats.MonthRevenue).Error
	if err != nil {
		return OverviewStats{}, err
	}

	return stats, nil
}

func (h GetDashboardStatsQueryHandler) statusCounts(ctx context.Context) ([]StatusCount, error) {
	rows := make([]StatusCount, 0)

	err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS count
		FROM orders
		GROUP BY status
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64, len(rows))
	for _, r := range rows {
		byStatus[r.Status] = r.Count
	}

	// Every lifecycle state appears, zero-count states included, so the
	// dashboard shape is stable regardless of what the table holds.
	counts := make([]StatusCount, 0, len(order.AllStatuses()))
	for _, status := range order.AllStatuses() {
		counts = append(counts, StatusCount{
			Status: string(status),
			Count:  byStatus[string(status)],
		})
	}

	return counts, nil
}

func (h GetDashboardStatsQueryHandler) recentOrders(ctx context.Context) ([]RecentOrder, error) {
	recent := make([]RecentOrder, 0, recentOrdersLimit)

	err := h.db.WithContext(ctx).
		Model(&orderRow{}).
		Select("order_id", "full_name", "print_type", "status", "total_cost", "order_date").
		Order("order_date DESC").
		Limit(recentOrdersLimit).
		Scan(&recent).Error
	if err != nil {
		return nil, err
	}

	return recent, nil
}

func (h GetDashboardStatsQueryHandler) ordersByType(ctx context.Context) ([]PrintTypeStats, error) {
	byType := make([]PrintTypeStats, 0)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			print_type,
			COUNT(*) AS count,
			COALESCE(SUM(total_cost), 0) AS revenue
		FROM orders
		GROUP BY print_type
		ORDER BY count DESC
	`).Scan(&byType).Error
	if err != nil {
		return nil, err
	}

	return byType, nil
}

func (h GetDashboardStatsQueryHandler) dailyOrders(
	ctx context.Context, now time.Time,
) ([]DailyCount, error) {
	since := startOfDay(now).AddDate(0, 0, -(dailySeriesDays - 1))

	rows := make([]struct {
		Day   time.Time
		Count int64
	}, 0, dailySeriesDays)

	err := h.db.WithContext(ctx).Raw(`
		SELECT DATE(order_date) AS day, COUNT(*) AS count
		FROM orders
		WHERE order_date >= ?
		GROUP BY day
		ORDER BY day
	`, since).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]int64, len(rows))
	for _, r := range rows {
		byDate[r.Day.Format("2006-01-02")] = r.Count
	}

	// One entry per calendar day, zero-count days included, so the series
	// always spans exactly the trailing window.
	daily := make([]DailyCount, 0, dailySeriesDays)
	for i := range dailySeriesDays {
		date := since.AddDate(0, 0, i).Format("2006-01-02")
		daily = append(daily, DailyCount{
			Date:  date,
			Count: byDate[date],
		})
	}

	return daily, nil
}
