package payroll

import (
	"context"
	"time"
)

type ComponentRepository interface {
	Create(ctx context.Context, c *SalaryComponent) error
	GetByID(ctx context.Context, id string) (*SalaryComponent, error)
	GetByName(ctx context.Context, name string) (*SalaryComponent, error)
	List(ctx context.Context, activeOnly bool) ([]SalaryComponent, error)
	Update(ctx context.Context, c *SalaryComponent) error
}

type SalaryRepository interface {
	Create(ctx context.Context, s *EmployeeSalary, values []SalaryComponentValue) error
	GetByID(ctx context.Context, id string) (*EmployeeSalary, error)
	// GetActiveByEmployee returns the employee's active salary profile.
	GetActiveByEmployee(ctx context.Context, employeeID string) (*EmployeeSalary, error)
	// ListActive returns every active salary profile, used by ProcessRun.
	ListActive(ctx context.Context) ([]EmployeeSalary, error)
	// GetValues returns the component values bound to the salary, with
	// component name and type joined in.
	GetValues(ctx context.Context, salaryID string) ([]SalaryComponentValue, error)
	// Deactivate marks the employee's current active salary inactive.
	Deactivate(ctx context.Context, employeeID string) error
}

type PeriodRepository interface {
	Create(ctx context.Context, p *PayrollPeriod) error
	GetByID(ctx context.Context, id string) (*PayrollPeriod, error)
	List(ctx context.Context) ([]PayrollPeriod, error)
	// Overlapping reports whether any period intersects [start, end].
	Overlapping(ctx context.Context, start, end time.Time) (bool, error)
	Close(ctx context.Context, id string) error
}

type RunRepository interface {
	Create(ctx context.Context, r *PayrollRun) error
	GetByID(ctx context.Context, id string) (*PayrollRun, error)
	List(ctx context.Context, filter *RunFilter) ([]PayrollRun, int, error)
	// Claim transitions the run from draft to processing, returning false
	// when the run was not in draft. The conditional update is what
	// serializes concurrent ProcessRun calls on the same run.
	Claim(ctx context.Context, id string) (bool, error)
	// Complete sets the terminal completed status together with totals.
	Complete(ctx context.Context, r *PayrollRun) error
	Cancel(ctx context.Context, id string) (bool, error)
}

type PayslipRepository interface {
	// Create inserts the payslip and its detail rows. A (run, employee)
	// uniqueness violation surfaces as ErrPayslipExists.
	Create(ctx context.Context, p *Payslip) error
	GetByID(ctx context.Context, id string) (*Payslip, error)
	ListByRun(ctx context.Context, runID string) ([]Payslip, error)
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]Payslip, error)
}
