package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hexahash/attendance-portal-go/internal/domain/dashboard"
	"github.com/hexahash/attendance-portal-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) Overview(ctx context.Context, today time.Time) (*dashboard.Overview, error) {
	q := GetQuerier(ctx, r.db)

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	dayEnd := day.AddDate(0, 0, 1)

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees WHERE status = 'active'),
			(SELECT COUNT(*) FROM daily_summaries WHERE summary_date = $1 AND status = 'present'),
			(SELECT COUNT(*) FROM daily_summaries WHERE summary_date = $1 AND status = 'absent'),
			(SELECT COUNT(*) FROM daily_summaries WHERE summary_date = $1 AND late_by > 0),
			(SELECT COUNT(*) FROM daily_summaries WHERE summary_date = $1 AND status = 'leave'),
			(SELECT COUNT(*) FROM punch_events WHERE punch_time >= $1 AND punch_time < $2),
			(SELECT COUNT(*) FROM leave_applications WHERE status = 'pending'),
			(SELECT COUNT(*) FROM payroll_runs WHERE status IN ('draft', 'processing')),
			COALESCE((SELECT total_net FROM payroll_runs WHERE status = 'completed' ORDER BY processed_at DESC LIMIT 1), 0)
	`

	var o dashboard.Overview
	var lastNet decimal.Decimal
	err := q.QueryRow(ctx, query, day, dayEnd).Scan(
		&o.TotalEmployees, &o.PresentToday, &o.AbsentToday, &o.LateToday,
		&o.OnLeaveToday, &o.PunchesToday, &o.PendingLeaves, &o.ActiveRuns, &lastNet,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboard overview: %w", err)
	}
	o.LastRunNetTotal = lastNet.StringFixed(2)

	return &o, nil
}
