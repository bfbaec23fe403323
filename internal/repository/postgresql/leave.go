package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hexahash/attendance-portal-go/internal/domain/leave"
	"github.com/hexahash/attendance-portal-go/internal/pkg/database"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

const leaveTypeColumns = `id, name, max_per_year, is_paid, is_active`

func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, t *leave.LeaveType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_types (name, max_per_year, is_paid, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, t.Name, t.MaxPerYear, t.IsPaid, t.IsActive).Scan(&t.ID); err != nil {
		return fmt.Errorf("failed to create leave type: %w", err)
	}

	return nil
}

func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (*leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveTypeColumns + ` FROM leave_types WHERE id = $1`

	var t leave.LeaveType
	err := q.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.MaxPerYear, &t.IsPaid, &t.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrLeaveTypeNotFound
		}
		return nil, fmt.Errorf("failed to get leave type by id: %w", err)
	}

	return &t, nil
}

func (r *leaveTypeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveTypeColumns + ` FROM leave_types`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	defer rows.Close()

	var types []leave.LeaveType
	for rows.Next() {
		var t leave.LeaveType
		if err := rows.Scan(&t.ID, &t.Name, &t.MaxPerYear, &t.IsPaid, &t.IsActive); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}

func (r *leaveTypeRepositoryImpl) Update(ctx context.Context, t *leave.LeaveType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_types
		SET name = $1, max_per_year = $2, is_paid = $3, is_active = $4
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, t.Name, t.MaxPerYear, t.IsPaid, t.IsActive, t.ID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveTypeNotFound
		}
		return fmt.Errorf("failed to update leave type: %w", err)
	}

	return nil
}

type applicationRepositoryImpl struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) leave.ApplicationRepository {
	return &applicationRepositoryImpl{db: db}
}

const applicationColumns = `
	a.id, a.employee_id, a.leave_type_id, a.start_date, a.end_date, a.total_days,
	a.reason, a.status, a.decided_by, a.decided_at, a.created_at,
	e.code AS employee_code, e.first_name || ' ' || e.last_name AS employee_name,
	t.name AS leave_type_name`

const applicationJoins = `
	FROM leave_applications a
	JOIN employees e ON e.id = a.employee_id
	JOIN leave_types t ON t.id = a.leave_type_id`

func scanApplication(row pgx.Row) (*leave.LeaveApplication, error) {
	var a leave.LeaveApplication
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.LeaveTypeID, &a.StartDate, &a.EndDate, &a.TotalDays,
		&a.Reason, &a.Status, &a.DecidedBy, &a.DecidedAt, &a.CreatedAt,
		&a.EmployeeCode, &a.EmployeeName, &a.LeaveTypeName,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepositoryImpl) Create(ctx context.Context, a *leave.LeaveApplication) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_applications (employee_id, leave_type_id, start_date, end_date, total_days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		a.EmployeeID, a.LeaveTypeID, a.StartDate, a.EndDate, a.TotalDays, a.Reason, a.Status,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create leave application: %w", err)
	}

	return nil
}

func (r *applicationRepositoryImpl) GetByID(ctx context.Context, id string) (*leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + applicationColumns + applicationJoins + ` WHERE a.id = $1`

	a, err := scanApplication(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get leave application by id: %w", err)
	}

	return a, nil
}

func (r *applicationRepositoryImpl) List(ctx context.Context, filter *leave.ApplicationFilter) ([]leave.LeaveApplication, int, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM leave_applications a` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave applications: %w", err)
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

	query := `SELECT ` + applicationColumns + applicationJoins + where +
		fmt.Sprintf(" ORDER BY a.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave applications: %w", err)
	}
	defer rows.Close()

	var applications []leave.LeaveApplication
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, 0, err
		}
		applications = append(applications, *a)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return applications, total, nil
}

func (r *applicationRepositoryImpl) HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_applications
			WHERE employee_id = $1
				AND status IN ('pending', 'approved')
				AND start_date <= $3 AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check leave overlap: %w", err)
	}

	return exists, nil
}

func (r *applicationRepositoryImpl) DaysTakenInYear(ctx context.Context, employeeID, leaveTypeID string, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(total_days), 0)
		FROM leave_applications
		WHERE employee_id = $1
			AND leave_type_id = $2
			AND status = 'approved'
			AND EXTRACT(YEAR FROM start_date) = $3
	`

	var days int
	if err := q.QueryRow(ctx, query, employeeID, leaveTypeID, year).Scan(&days); err != nil {
		return 0, fmt.Errorf("failed to sum leave days taken: %w", err)
	}

	return days, nil
}

func (r *applicationRepositoryImpl) ApprovedCovering(ctx context.Context, employeeID string, date time.Time) (*leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + applicationColumns + applicationJoins + `
		WHERE a.employee_id = $1
			AND a.status = 'approved'
			AND a.start_date <= $2 AND a.end_date >= $2
		LIMIT 1`

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	a, err := scanApplication(q.QueryRow(ctx, query, employeeID, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find covering leave application: %w", err)
	}

	return a, nil
}

func (r *applicationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.ApplicationStatus, decidedBy string, decidedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_applications
		SET status = $1, decided_by = $2, decided_at = $3
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, decidedBy, decidedAt, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrApplicationNotFound
		}
		return fmt.Errorf("failed to update leave application status: %w", err)
	}

	return nil
}
