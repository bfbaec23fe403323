package payroll

import "context"

type PayrollService interface {
	CreateComponent(ctx context.Context, req *CreateComponentRequest) (*ComponentResponse, error)
	UpdateComponent(ctx context.Context, req *UpdateComponentRequest) (*ComponentResponse, error)
	ListComponents(ctx context.Context, activeOnly bool) ([]ComponentResponse, error)

	AssignSalary(ctx context.Context, req *CreateSalaryRequest) (*SalaryResponse, error)
	GetEmployeeSalary(ctx context.Context, employeeID string) (*SalaryResponse, error)

	CreatePeriod(ctx context.Context, req *CreatePeriodRequest) (*PeriodResponse, error)
	ListPeriods(ctx context.Context) ([]PeriodResponse, error)
	ClosePeriod(ctx context.Context, id string) error

	CreateRun(ctx context.Context, req *CreateRunRequest) (*RunResponse, error)
	GetRun(ctx context.Context, id string) (*RunResponse, error)
	ListRuns(ctx context.Context, filter *RunFilter) (*ListRunResponse, error)
	// ProcessRun claims a draft run, builds a payslip for every active
	// salary inside one transaction, and completes the run with totals.
	// Non-draft runs are rejected with ErrRunNotDraft.
	ProcessRun(ctx context.Context, id string) (*RunResponse, error)
	CancelRun(ctx context.Context, id string) error

	GetPayslip(ctx context.Context, id string) (*PayslipResponse, error)
	ListRunPayslips(ctx context.Context, runID string) ([]PayslipResponse, error)
	ListEmployeePayslips(ctx context.Context, employeeID string, limit int) ([]PayslipResponse, error)
}
