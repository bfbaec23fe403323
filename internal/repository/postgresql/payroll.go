package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hexahash/attendance-portal-go/internal/domain/payroll"
	"github.com/hexahash/attendance-portal-go/internal/pkg/database"
)

const pgUniqueViolation = "23505"

type componentRepositoryImpl struct {
	db *database.DB
}

func NewComponentRepository(db *database.DB) payroll.ComponentRepository {
	return &componentRepositoryImpl{db: db}
}

const componentColumns = `id, name, type, is_taxable, is_active, created_at, updated_at`

func scanComponent(row pgx.Row) (*payroll.SalaryComponent, error) {
	var c payroll.SalaryComponent
	err := row.Scan(&c.ID, &c.Name, &c.Type, &c.IsTaxable, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *componentRepositoryImpl) Create(ctx context.Context, c *payroll.SalaryComponent) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_components (name, type, is_taxable, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, c.Name, c.Type, c.IsTaxable, c.IsActive).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create salary component: %w", err)
	}

	return nil
}

func (r *componentRepositoryImpl) GetByID(ctx context.Context, id string) (*payroll.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + componentColumns + ` FROM salary_components WHERE id = $1`

	c, err := scanComponent(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrComponentNotFound
		}
		return nil, fmt.Errorf("failed to get salary component by id: %w", err)
	}

	return c, nil
}

func (r *componentRepositoryImpl) GetByName(ctx context.Context, name string) (*payroll.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + componentColumns + ` FROM salary_components WHERE LOWER(name) = LOWER($1)`

	c, err := scanComponent(q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrComponentNotFound
		}
		return nil, fmt.Errorf("failed to get salary component by name: %w", err)
	}

	return c, nil
}

func (r *componentRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]payroll.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + componentColumns + ` FROM salary_components`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary components: %w", err)
	}
	defer rows.Close()

	var components []payroll.SalaryComponent
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, err
		}
		components = append(components, *c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return components, nil
}

func (r *componentRepositoryImpl) Update(ctx context.Context, c *payroll.SalaryComponent) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_components
		SET name = $1, is_taxable = $2, is_active = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, c.Name, c.IsTaxable, c.IsActive, c.ID).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.ErrComponentNotFound
		}
		return fmt.Errorf("failed to update salary component: %w", err)
	}

	return nil
}

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) payroll.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

const salaryColumns = `
	s.id, s.employee_id, s.basic_salary, s.effective_date, s.is_active, s.created_at, s.updated_at,
	e.code AS employee_code, e.first_name || ' ' || e.last_name AS employee_name`

const salaryJoins = `
	FROM employee_salaries s
	JOIN employees e ON e.id = s.employee_id`

func scanSalary(row pgx.Row) (*payroll.EmployeeSalary, error) {
	var s payroll.EmployeeSalary
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.BasicSalary, &s.EffectiveDate, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt, &s.EmployeeCode, &s.EmployeeName,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *salaryRepositoryImpl) Create(ctx context.Context, s *payroll.EmployeeSalary, values []payroll.SalaryComponentValue) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_salaries (employee_id, basic_salary, effective_date, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, s.EmployeeID, s.BasicSalary, s.EffectiveDate, s.IsActive).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create employee salary: %w", err)
	}

	valueQuery := `
		INSERT INTO salary_component_values (employee_salary_id, component_id, amount, is_percentage, percentage_of_basic)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	for i := range values {
		values[i].EmployeeSalaryID = s.ID
		err := q.QueryRow(ctx, valueQuery,
			s.ID, values[i].ComponentID, values[i].Amount,
			values[i].IsPercentage, values[i].PercentageOfBasic,
		).Scan(&values[i].ID)
		if err != nil {
			return fmt.Errorf("failed to create salary component value: %w", err)
		}
	}

	return nil
}

func (r *salaryRepositoryImpl) GetByID(ctx context.Context, id string) (*payroll.EmployeeSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + salaryJoins + ` WHERE s.id = $1`

	s, err := scanSalary(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrSalaryNotFound
		}
		return nil, fmt.Errorf("failed to get employee salary by id: %w", err)
	}

	return s, nil
}

func (r *salaryRepositoryImpl) GetActiveByEmployee(ctx context.Context, employeeID string) (*payroll.EmployeeSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + salaryJoins + `
		WHERE s.employee_id = $1 AND s.is_active = TRUE`

	s, err := scanSalary(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrSalaryNotFound
		}
		return nil, fmt.Errorf("failed to get active salary for employee: %w", err)
	}

	return s, nil
}

func (r *salaryRepositoryImpl) ListActive(ctx context.Context) ([]payroll.EmployeeSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + salaryJoins + `
		WHERE s.is_active = TRUE AND e.status = 'active'
		ORDER BY e.code`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active salaries: %w", err)
	}
	defer rows.Close()

	var salaries []payroll.EmployeeSalary
	for rows.Next() {
		s, err := scanSalary(rows)
		if err != nil {
			return nil, err
		}
		salaries = append(salaries, *s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return salaries, nil
}

func (r *salaryRepositoryImpl) GetValues(ctx context.Context, salaryID string) ([]payroll.SalaryComponentValue, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT v.id, v.employee_salary_id, v.component_id, v.amount, v.is_percentage, v.percentage_of_basic,
			c.name, c.type
		FROM salary_component_values v
		JOIN salary_components c ON c.id = v.component_id
		WHERE v.employee_salary_id = $1
		ORDER BY c.type, c.name
	`

	rows, err := q.Query(ctx, query, salaryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get salary component values: %w", err)
	}
	defer rows.Close()

	var values []payroll.SalaryComponentValue
	for rows.Next() {
		var v payroll.SalaryComponentValue
		err := rows.Scan(
			&v.ID, &v.EmployeeSalaryID, &v.ComponentID, &v.Amount,
			&v.IsPercentage, &v.PercentageOfBasic, &v.ComponentName, &v.ComponentType,
		)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return values, nil
}

func (r *salaryRepositoryImpl) Deactivate(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_salaries
		SET is_active = FALSE, updated_at = NOW()
		WHERE employee_id = $1 AND is_active = TRUE
	`

	if _, err := q.Exec(ctx, query, employeeID); err != nil {
		return fmt.Errorf("failed to deactivate employee salary: %w", err)
	}

	return nil
}

type periodRepositoryImpl struct {
	db *database.DB
}

func NewPeriodRepository(db *database.DB) payroll.PeriodRepository {
	return &periodRepositoryImpl{db: db}
}

const periodColumns = `id, name, start_date, end_date, is_closed`

func (r *periodRepositoryImpl) Create(ctx context.Context, p *payroll.PayrollPeriod) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_periods (name, start_date, end_date, is_closed)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, p.Name, p.StartDate, p.EndDate, p.IsClosed).Scan(&p.ID); err != nil {
		return fmt.Errorf("failed to create payroll period: %w", err)
	}

	return nil
}

func (r *periodRepositoryImpl) GetByID(ctx context.Context, id string) (*payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE id = $1`

	var p payroll.PayrollPeriod
	err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.IsClosed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrPeriodNotFound
		}
		return nil, fmt.Errorf("failed to get payroll period by id: %w", err)
	}

	return &p, nil
}

func (r *periodRepositoryImpl) List(ctx context.Context) ([]payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods ORDER BY start_date DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.PayrollPeriod
	for rows.Next() {
		var p payroll.PayrollPeriod
		if err := rows.Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.IsClosed); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return periods, nil
}

func (r *periodRepositoryImpl) Overlapping(ctx context.Context, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM payroll_periods
			WHERE start_date <= $2 AND end_date >= $1
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check period overlap: %w", err)
	}

	return exists, nil
}

func (r *periodRepositoryImpl) Close(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE payroll_periods SET is_closed = TRUE WHERE id = $1 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.ErrPeriodNotFound
		}
		return fmt.Errorf("failed to close payroll period: %w", err)
	}

	return nil
}

type runRepositoryImpl struct {
	db *database.DB
}

func NewRunRepository(db *database.DB) payroll.RunRepository {
	return &runRepositoryImpl{db: db}
}

const runColumns = `
	r.id, r.period_id, r.status, r.employee_count, r.total_gross, r.total_deductions, r.total_net,
	r.processed_at, r.created_by, r.created_at, r.updated_at,
	p.name AS period_name`

const runJoins = `
	FROM payroll_runs r
	JOIN payroll_periods p ON p.id = r.period_id`

func scanRun(row pgx.Row) (*payroll.PayrollRun, error) {
	var r payroll.PayrollRun
	err := row.Scan(
		&r.ID, &r.PeriodID, &r.Status, &r.EmployeeCount, &r.TotalGross,
		&r.TotalDeductions, &r.TotalNet, &r.ProcessedAt, &r.CreatedBy,
		&r.CreatedAt, &r.UpdatedAt, &r.PeriodName,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *runRepositoryImpl) Create(ctx context.Context, run *payroll.PayrollRun) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_runs (period_id, status, employee_count, total_gross, total_deductions, total_net, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		run.PeriodID, run.Status, run.EmployeeCount,
		run.TotalGross, run.TotalDeductions, run.TotalNet, run.CreatedBy,
	).Scan(&run.ID, &run.CreatedAt, &run.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payroll run: %w", err)
	}

	return nil
}

func (r *runRepositoryImpl) GetByID(ctx context.Context, id string) (*payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + runColumns + runJoins + ` WHERE r.id = $1`

	run, err := scanRun(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to get payroll run by id: %w", err)
	}

	return run, nil
}

func (r *runRepositoryImpl) List(ctx context.Context, filter *payroll.RunFilter) ([]payroll.PayrollRun, int, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.PeriodID != "" {
		conditions = append(conditions, fmt.Sprintf("r.period_id = $%d", argIdx))
		args = append(args, filter.PeriodID)
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("r.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM payroll_runs r` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll runs: %w", err)
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

	query := `SELECT ` + runColumns + runJoins + where +
		fmt.Sprintf(" ORDER BY r.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.PayrollRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, 0, err
		}
		runs = append(runs, *run)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return runs, total, nil
}

// Claim flips the run to processing only when it is still draft. The
// conditional update makes concurrent ProcessRun calls on the same run
// race safely: exactly one caller sees a row update.
func (r *runRepositoryImpl) Claim(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_runs
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	tag, err := q.Exec(ctx, query, payroll.RunProcessing, id, payroll.RunDraft)
	if err != nil {
		return false, fmt.Errorf("failed to claim payroll run: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *runRepositoryImpl) Complete(ctx context.Context, run *payroll.PayrollRun) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_runs
		SET status = $1, employee_count = $2, total_gross = $3, total_deductions = $4,
			total_net = $5, processed_at = $6, updated_at = NOW()
		WHERE id = $7 AND status = $8
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		payroll.RunCompleted, run.EmployeeCount, run.TotalGross, run.TotalDeductions,
		run.TotalNet, run.ProcessedAt, run.ID, payroll.RunProcessing,
	).Scan(&run.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.ErrRunNotDraft
		}
		return fmt.Errorf("failed to complete payroll run: %w", err)
	}

	run.Status = payroll.RunCompleted
	return nil
}

func (r *runRepositoryImpl) Cancel(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_runs
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	tag, err := q.Exec(ctx, query, payroll.RunCancelled, id, payroll.RunDraft)
	if err != nil {
		return false, fmt.Errorf("failed to cancel payroll run: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

type payslipRepositoryImpl struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payroll.PayslipRepository {
	return &payslipRepositoryImpl{db: db}
}

const payslipColumns = `
	ps.id, ps.run_id, ps.employee_id, ps.basic_salary, ps.total_earnings,
	ps.total_deductions, ps.net_pay, ps.created_at,
	e.code AS employee_code, e.first_name || ' ' || e.last_name AS employee_name`

const payslipJoins = `
	FROM payslips ps
	JOIN employees e ON e.id = ps.employee_id`

func scanPayslip(row pgx.Row) (*payroll.Payslip, error) {
	var p payroll.Payslip
	err := row.Scan(
		&p.ID, &p.RunID, &p.EmployeeID, &p.BasicSalary, &p.TotalEarnings,
		&p.TotalDeductions, &p.NetPay, &p.CreatedAt, &p.EmployeeCode, &p.EmployeeName,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *payslipRepositoryImpl) Create(ctx context.Context, p *payroll.Payslip) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (run_id, employee_id, basic_salary, total_earnings, total_deductions, net_pay)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		p.RunID, p.EmployeeID, p.BasicSalary, p.TotalEarnings, p.TotalDeductions, p.NetPay,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return payroll.ErrPayslipExists
		}
		return fmt.Errorf("failed to create payslip: %w", err)
	}

	detailQuery := `
		INSERT INTO payslip_details (payslip_id, component_id, component_name, type, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	for i := range p.Details {
		p.Details[i].PayslipID = p.ID
		err := q.QueryRow(ctx, detailQuery,
			p.ID, p.Details[i].ComponentID, p.Details[i].ComponentName,
			p.Details[i].Type, p.Details[i].Amount,
		).Scan(&p.Details[i].ID)
		if err != nil {
			return fmt.Errorf("failed to create payslip detail: %w", err)
		}
	}

	return nil
}

func (r *payslipRepositoryImpl) GetByID(ctx context.Context, id string) (*payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + payslipJoins + ` WHERE ps.id = $1`

	p, err := scanPayslip(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrPayslipNotFound
		}
		return nil, fmt.Errorf("failed to get payslip by id: %w", err)
	}

	details, err := r.getDetails(ctx, q, p.ID)
	if err != nil {
		return nil, err
	}
	p.Details = details

	return p, nil
}

func (r *payslipRepositoryImpl) getDetails(ctx context.Context, q database.Querier, payslipID string) ([]payroll.PayslipDetail, error) {
	query := `
		SELECT id, payslip_id, component_id, component_name, type, amount
		FROM payslip_details
		WHERE payslip_id = $1
		ORDER BY type, component_name
	`

	rows, err := q.Query(ctx, query, payslipID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payslip details: %w", err)
	}
	defer rows.Close()

	var details []payroll.PayslipDetail
	for rows.Next() {
		var d payroll.PayslipDetail
		if err := rows.Scan(&d.ID, &d.PayslipID, &d.ComponentID, &d.ComponentName, &d.Type, &d.Amount); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}

func (r *payslipRepositoryImpl) ListByRun(ctx context.Context, runID string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + payslipJoins + `
		WHERE ps.run_id = $1
		ORDER BY e.code`

	rows, err := q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips for run: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, err
		}
		payslips = append(payslips, *p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payslips, nil
}

func (r *payslipRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 12
	}

	query := `SELECT ` + payslipColumns + payslipJoins + `
		WHERE ps.employee_id = $1
		ORDER BY ps.created_at DESC
		LIMIT $2`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips for employee: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, err
		}
		payslips = append(payslips, *p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payslips, nil
}
