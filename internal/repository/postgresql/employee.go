package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hexahash/attendance-portal-go/internal/domain/employee"
	"github.com/hexahash/attendance-portal-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.code, e.first_name, e.last_name, e.email, e.mobile,
	e.department_id, e.designation_id, e.shift_id, e.manager_id, e.join_date, e.leave_date,
	e.status, e.photo_url, e.created_at, e.updated_at,
	d.name AS department_name, g.name AS designation_name, s.name AS shift_name,
	m.first_name || ' ' || m.last_name AS manager_name`

const employeeJoins = `
	FROM employees e
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN designations g ON g.id = e.designation_id
	LEFT JOIN shifts s ON s.id = e.shift_id
	LEFT JOIN employees m ON m.id = e.manager_id`

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Code, &e.FirstName, &e.LastName, &e.Email, &e.Mobile,
		&e.DepartmentID, &e.DesignationID, &e.ShiftID, &e.ManagerID, &e.JoinDate, &e.LeaveDate,
		&e.Status, &e.PhotoURL, &e.CreatedAt, &e.UpdatedAt,
		&e.DepartmentName, &e.DesignationName, &e.ShiftName, &e.ManagerName,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, e *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			code, first_name, last_name, email, mobile,
			department_id, designation_id, shift_id, manager_id, join_date, status, photo_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.Code, e.FirstName, e.LastName, e.Email, e.Mobile,
		e.DepartmentID, e.DesignationID, e.ShiftID, e.ManagerID, e.JoinDate, e.Status, e.PhotoURL,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + ` WHERE e.id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return e, nil
}

func (r *employeeRepositoryImpl) GetByCode(ctx context.Context, code string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + ` WHERE e.code = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by code: %w", err)
	}

	return e, nil
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + ` WHERE e.email = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return e, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context, filter *employee.EmployeeFilter) ([]employee.Employee, int, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(e.code ILIKE $%d OR e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.email ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.DepartmentID != "" {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argIdx))
		args = append(args, filter.DepartmentID)
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM employees e` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
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

	query := `SELECT ` + employeeColumns + employeeJoins + where +
		fmt.Sprintf(" ORDER BY e.code LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, *e)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *employeeRepositoryImpl) ListActiveOn(ctx context.Context, date time.Time) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + `
		WHERE e.join_date <= $1
			AND (e.leave_date IS NULL OR e.leave_date >= $1)
			AND e.status = $2
		ORDER BY e.code`

	rows, err := q.Query(ctx, query, date, employee.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, e *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, email = $3, mobile = $4,
			department_id = $5, designation_id = $6, shift_id = $7, manager_id = $8,
			leave_date = $9, status = $10, photo_url = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		e.FirstName, e.LastName, e.Email, e.Mobile,
		e.DepartmentID, e.DesignationID, e.ShiftID, e.ManagerID,
		e.LeaveDate, e.Status, e.PhotoURL, e.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
