package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hexahash/attendance-portal-go/internal/domain/attendance"
	"github.com/hexahash/attendance-portal-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) attendance.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

const punchColumns = `
	p.id, p.employee_id, p.direction, p.punch_time, p.device_id,
	p.geo_lat, p.geo_long, p.selfie_url, p.status, p.created_at,
	e.code AS employee_code, e.first_name || ' ' || e.last_name AS employee_name,
	d.name AS device_name`

const punchJoins = `
	FROM punch_events p
	JOIN employees e ON e.id = p.employee_id
	LEFT JOIN devices d ON d.id = p.device_id`

func scanPunch(row pgx.Row) (attendance.PunchEvent, error) {
	var p attendance.PunchEvent
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Direction, &p.PunchTime, &p.DeviceID,
		&p.GeoLat, &p.GeoLong, &p.SelfieURL, &p.Status, &p.CreatedAt,
		&p.EmployeeCode, &p.EmployeeName, &p.DeviceName,
	)
	return p, err
}

func (r *punchRepositoryImpl) Create(ctx context.Context, punch attendance.PunchEvent) (attendance.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punch_events (employee_id, direction, punch_time, device_id, geo_lat, geo_long, selfie_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		punch.EmployeeID, punch.Direction, punch.PunchTime, punch.DeviceID,
		punch.GeoLat, punch.GeoLong, punch.SelfieURL, punch.Status,
	).Scan(&punch.ID, &punch.CreatedAt)
	if err != nil {
		return attendance.PunchEvent{}, fmt.Errorf("failed to create punch event: %w", err)
	}

	return punch, nil
}

func (r *punchRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + punchColumns + punchJoins + ` WHERE p.id = $1`

	p, err := scanPunch(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.PunchEvent{}, attendance.ErrPunchNotFound
		}
		return attendance.PunchEvent{}, fmt.Errorf("failed to get punch by id: %w", err)
	}

	return p, nil
}

func (r *punchRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, approvedOnly bool) ([]attendance.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + punchColumns + punchJoins + `
		WHERE p.employee_id = $1 AND p.punch_time >= $2 AND p.punch_time < $3`
	if approvedOnly {
		query += ` AND p.status = 'approved'`
	}
	query += ` ORDER BY p.punch_time`

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := q.Query(ctx, query, employeeID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get punches for employee and date: %w", err)
	}
	defer rows.Close()

	var punches []attendance.PunchEvent
	for rows.Next() {
		p, err := scanPunch(rows)
		if err != nil {
			return nil, err
		}
		punches = append(punches, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return punches, nil
}

func (r *punchRepositoryImpl) List(ctx context.Context, filter attendance.PunchFilter) ([]attendance.PunchEvent, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.DateFrom != "" {
		conditions = append(conditions, fmt.Sprintf("p.punch_time >= $%d", argIdx))
		args = append(args, filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != "" {
		conditions = append(conditions, fmt.Sprintf("p.punch_time < ($%d::date + INTERVAL '1 day')", argIdx))
		args = append(args, filter.DateTo)
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM punch_events p` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count punch events: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := `SELECT ` + punchColumns + punchJoins + where +
		fmt.Sprintf(" ORDER BY p.punch_time DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list punch events: %w", err)
	}
	defer rows.Close()

	var punches []attendance.PunchEvent
	for rows.Next() {
		p, err := scanPunch(rows)
		if err != nil {
			return nil, 0, err
		}
		punches = append(punches, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return punches, total, nil
}

func (r *punchRepositoryImpl) UpdateStatus(ctx context.Context, id string, status attendance.PunchStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE punch_events SET status = $1 WHERE id = $2 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrPunchNotFound
		}
		return fmt.Errorf("failed to update punch status: %w", err)
	}

	return nil
}

type summaryRepositoryImpl struct {
	db *database.DB
}

func NewSummaryRepository(db *database.DB) attendance.SummaryRepository {
	return &summaryRepositoryImpl{db: db}
}

const summaryColumns = `
	s.id, s.employee_id, s.summary_date, s.in_time, s.out_time, s.worked_hours,
	s.late_by, s.early_out, s.status, s.created_at, s.updated_at,
	e.code AS employee_code, e.first_name || ' ' || e.last_name AS employee_name`

const summaryJoins = `
	FROM daily_summaries s
	JOIN employees e ON e.id = s.employee_id`

func scanSummary(row pgx.Row) (attendance.DailySummary, error) {
	var s attendance.DailySummary
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.Date, &s.InTime, &s.OutTime, &s.WorkedHours,
		&s.LateBy, &s.EarlyOut, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		&s.EmployeeCode, &s.EmployeeName,
	)
	return s, err
}

func (r *summaryRepositoryImpl) Upsert(ctx context.Context, summary attendance.DailySummary) (attendance.DailySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_summaries (employee_id, summary_date, in_time, out_time, worked_hours, late_by, early_out, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employee_id, summary_date) DO UPDATE
		SET in_time = EXCLUDED.in_time,
			out_time = EXCLUDED.out_time,
			worked_hours = EXCLUDED.worked_hours,
			late_by = EXCLUDED.late_by,
			early_out = EXCLUDED.early_out,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		summary.EmployeeID, summary.Date, summary.InTime, summary.OutTime,
		summary.WorkedHours, summary.LateBy, summary.EarlyOut, summary.Status,
	).Scan(&summary.ID, &summary.CreatedAt, &summary.UpdatedAt)
	if err != nil {
		return attendance.DailySummary{}, fmt.Errorf("failed to upsert daily summary: %w", err)
	}

	return summary, nil
}

func (r *summaryRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.DailySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + summaryColumns + summaryJoins + `
		WHERE s.employee_id = $1 AND s.summary_date = $2`

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	s, err := scanSummary(q.QueryRow(ctx, query, employeeID, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.DailySummary{}, attendance.ErrSummaryNotFound
		}
		return attendance.DailySummary{}, fmt.Errorf("failed to get summary: %w", err)
	}

	return s, nil
}

func (r *summaryRepositoryImpl) List(ctx context.Context, filter attendance.SummaryFilter) ([]attendance.DailySummary, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("s.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.DateFrom != "" {
		conditions = append(conditions, fmt.Sprintf("s.summary_date >= $%d", argIdx))
		args = append(args, filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != "" {
		conditions = append(conditions, fmt.Sprintf("s.summary_date <= $%d", argIdx))
		args = append(args, filter.DateTo)
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("s.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM daily_summaries s` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count daily summaries: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := `SELECT ` + summaryColumns + summaryJoins + where +
		fmt.Sprintf(" ORDER BY s.summary_date DESC, e.code LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list daily summaries: %w", err)
	}
	defer rows.Close()

	var summaries []attendance.DailySummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, s)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return summaries, total, nil
}

func (r *summaryRepositoryImpl) SetStatusForRange(ctx context.Context, employeeID string, from, to time.Time, status attendance.SummaryStatus) error {
	q := GetQuerier(ctx, r.db)

	// One row per day in the range; existing rows keep their punch-derived
	// columns and only flip status.
	query := `
		INSERT INTO daily_summaries (employee_id, summary_date, status)
		SELECT $1, d::date, $4
		FROM generate_series($2::date, $3::date, INTERVAL '1 day') AS d
		ON CONFLICT (employee_id, summary_date) DO UPDATE
		SET status = EXCLUDED.status, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, employeeID, from, to, status); err != nil {
		return fmt.Errorf("failed to set summary status for range: %w", err)
	}

	return nil
}

func (r *summaryRepositoryImpl) Stats(ctx context.Context, from, to time.Time, employeeIDs []string) ([]attendance.MonthlyStats, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"s.summary_date >= $1", "s.summary_date <= $2"}
	args := []any{from, to}

	if len(employeeIDs) > 0 {
		conditions = append(conditions, "s.employee_id = ANY($3)")
		args = append(args, employeeIDs)
	}

	query := `
		SELECT s.employee_id, e.code, e.first_name || ' ' || e.last_name,
			COUNT(*) FILTER (WHERE s.status = 'present') AS present_days,
			COUNT(*) FILTER (WHERE s.status = 'absent') AS absent_days,
			COUNT(*) FILTER (WHERE s.status = 'half_day') AS half_days,
			COUNT(*) FILTER (WHERE s.status = 'leave') AS leave_days,
			COUNT(*) FILTER (WHERE s.late_by > 0) AS late_days,
			COALESCE(SUM(s.late_by), 0) AS total_late_minutes,
			COALESCE(SUM(s.worked_hours), 0) AS total_hours
		FROM daily_summaries s
		JOIN employees e ON e.id = s.employee_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		GROUP BY s.employee_id, e.code, e.first_name, e.last_name
		ORDER BY e.code
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate summary stats: %w", err)
	}
	defer rows.Close()

	var stats []attendance.MonthlyStats
	for rows.Next() {
		var st attendance.MonthlyStats
		err := rows.Scan(
			&st.EmployeeID, &st.EmployeeCode, &st.EmployeeName,
			&st.PresentDays, &st.AbsentDays, &st.HalfDays, &st.LeaveDays,
			&st.LateDays, &st.TotalLateMinutes, &st.TotalHours,
		)
		if err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
