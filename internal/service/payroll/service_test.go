package payroll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexahash/attendance-portal-go/internal/domain/employee"
	"github.com/hexahash/attendance-portal-go/internal/domain/payroll"
)

type fakeRunRepo struct {
	runs      map[string]*payroll.PayrollRun
	completed int
}

func newFakeRunRepo() *fakeRunRepo {
	return &fakeRunRepo{runs: make(map[string]*payroll.PayrollRun)}
}

func (f *fakeRunRepo) Create(_ context.Context, r *payroll.PayrollRun) error {
	if r.ID == "" {
		r.ID = fmt.Sprintf("run-%d", len(f.runs)+1)
	}
	stored := *r
	f.runs[r.ID] = &stored
	return nil
}

func (f *fakeRunRepo) GetByID(_ context.Context, id string) (*payroll.PayrollRun, error) {
	r, ok := f.runs[id]
	if !ok {
		return nil, payroll.ErrRunNotFound
	}
	clone := *r
	return &clone, nil
}

func (f *fakeRunRepo) List(_ context.Context, _ *payroll.RunFilter) ([]payroll.PayrollRun, int, error) {
	return nil, 0, nil
}

func (f *fakeRunRepo) Claim(_ context.Context, id string) (bool, error) {
	r, ok := f.runs[id]
	if !ok || r.Status != payroll.RunDraft {
		return false, nil
	}
	r.Status = payroll.RunProcessing
	return true, nil
}

func (f *fakeRunRepo) Complete(_ context.Context, r *payroll.PayrollRun) error {
	stored, ok := f.runs[r.ID]
	if !ok || stored.Status != payroll.RunProcessing {
		return payroll.ErrRunNotDraft
	}
	*stored = *r
	stored.Status = payroll.RunCompleted
	r.Status = payroll.RunCompleted
	f.completed++
	return nil
}

func (f *fakeRunRepo) Cancel(_ context.Context, id string) (bool, error) {
	r, ok := f.runs[id]
	if !ok || r.Status != payroll.RunDraft {
		return false, nil
	}
	r.Status = payroll.RunCancelled
	return true, nil
}

type fakeSalaryRepo struct {
	salaries []payroll.EmployeeSalary
	values   map[string][]payroll.SalaryComponentValue
}

func newFakeSalaryRepo() *fakeSalaryRepo {
	return &fakeSalaryRepo{values: make(map[string][]payroll.SalaryComponentValue)}
}

func (f *fakeSalaryRepo) Create(_ context.Context, s *payroll.EmployeeSalary, values []payroll.SalaryComponentValue) error {
	if s.ID == "" {
		s.ID = fmt.Sprintf("sal-%d", len(f.salaries)+1)
	}
	f.salaries = append(f.salaries, *s)
	f.values[s.ID] = values
	return nil
}

func (f *fakeSalaryRepo) GetByID(_ context.Context, id string) (*payroll.EmployeeSalary, error) {
	for i := range f.salaries {
		if f.salaries[i].ID == id {
			clone := f.salaries[i]
			return &clone, nil
		}
	}
	return nil, payroll.ErrSalaryNotFound
}

func (f *fakeSalaryRepo) GetActiveByEmployee(_ context.Context, employeeID string) (*payroll.EmployeeSalary, error) {
	for i := range f.salaries {
		if f.salaries[i].EmployeeID == employeeID && f.salaries[i].IsActive {
			clone := f.salaries[i]
			return &clone, nil
		}
	}
	return nil, payroll.ErrSalaryNotFound
}

func (f *fakeSalaryRepo) ListActive(_ context.Context) ([]payroll.EmployeeSalary, error) {
	var active []payroll.EmployeeSalary
	for i := range f.salaries {
		if f.salaries[i].IsActive {
			active = append(active, f.salaries[i])
		}
	}
	return active, nil
}

func (f *fakeSalaryRepo) GetValues(_ context.Context, salaryID string) ([]payroll.SalaryComponentValue, error) {
	return f.values[salaryID], nil
}

func (f *fakeSalaryRepo) Deactivate(_ context.Context, employeeID string) error {
	for i := range f.salaries {
		if f.salaries[i].EmployeeID == employeeID {
			f.salaries[i].IsActive = false
		}
	}
	return nil
}

type fakePayslipRepo struct {
	slips   []payroll.Payslip
	failFor map[string]error
}

func (f *fakePayslipRepo) Create(_ context.Context, p *payroll.Payslip) error {
	if err, ok := f.failFor[p.EmployeeID]; ok {
		return err
	}
	for i := range f.slips {
		if f.slips[i].RunID == p.RunID && f.slips[i].EmployeeID == p.EmployeeID {
			return payroll.ErrPayslipExists
		}
	}
	p.ID = fmt.Sprintf("slip-%d", len(f.slips)+1)
	f.slips = append(f.slips, *p)
	return nil
}

func (f *fakePayslipRepo) GetByID(_ context.Context, id string) (*payroll.Payslip, error) {
	for i := range f.slips {
		if f.slips[i].ID == id {
			clone := f.slips[i]
			return &clone, nil
		}
	}
	return nil, payroll.ErrPayslipNotFound
}

func (f *fakePayslipRepo) ListByRun(_ context.Context, runID string) ([]payroll.Payslip, error) {
	var slips []payroll.Payslip
	for i := range f.slips {
		if f.slips[i].RunID == runID {
			slips = append(slips, f.slips[i])
		}
	}
	return slips, nil
}

func (f *fakePayslipRepo) ListByEmployee(_ context.Context, employeeID string, _ int) ([]payroll.Payslip, error) {
	var slips []payroll.Payslip
	for i := range f.slips {
		if f.slips[i].EmployeeID == employeeID {
			slips = append(slips, f.slips[i])
		}
	}
	return slips, nil
}

type fakeEmployeeRepo struct {
	employees map[string]*employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, _ *employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByCode(_ context.Context, _ string) (*employee.Employee, error) {
	return nil, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, _ string) (*employee.Employee, error) {
	return nil, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ *employee.EmployeeFilter) ([]employee.Employee, int, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) ListActiveOn(_ context.Context, _ time.Time) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ *employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(_ context.Context, _ string) error             { return nil }

func newTestPayrollService(runs *fakeRunRepo, salaries *fakeSalaryRepo, slips *fakePayslipRepo, employees *fakeEmployeeRepo) *PayrollServiceImpl {
	s := &PayrollServiceImpl{
		runRepo:      runs,
		salaryRepo:   salaries,
		payslipRepo:  slips,
		employeeRepo: employees,
	}
	s.transact = func(ctx context.Context, fn func(tx pgx.Tx) error) error {
		return fn(nil)
	}
	return s
}

func seedDraftRun(runs *fakeRunRepo) string {
	runs.runs["run-1"] = &payroll.PayrollRun{
		ID:              "run-1",
		PeriodID:        "period-1",
		Status:          payroll.RunDraft,
		TotalGross:      decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNet:        decimal.Zero,
	}
	return "run-1"
}

func seedSalary(salaries *fakeSalaryRepo, employeeID, basic string) {
	_ = salaries.Create(context.Background(), &payroll.EmployeeSalary{
		EmployeeID:    employeeID,
		BasicSalary:   dec(basic),
		EffectiveDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:      true,
	}, []payroll.SalaryComponentValue{
		fixedValue("c-allowance", "Transport Allowance", payroll.ComponentEarning, "200.00"),
		fixedValue("c-tax", "Income Tax", payroll.ComponentDeduction, "150.00"),
	})
}

func TestProcessRunSettlesActiveSalaries(t *testing.T) {
	ctx := context.Background()
	runs := newFakeRunRepo()
	salaries := newFakeSalaryRepo()
	slips := &fakePayslipRepo{}

	runID := seedDraftRun(runs)
	seedSalary(salaries, "emp-1", "5000.00")
	seedSalary(salaries, "emp-2", "3000.00")

	svc := newTestPayrollService(runs, salaries, slips, &fakeEmployeeRepo{})

	resp, err := svc.ProcessRun(ctx, runID)
	require.NoError(t, err)

	assert.Equal(t, string(payroll.RunCompleted), resp.Status)
	assert.Equal(t, 2, resp.EmployeeCount)
	assert.Equal(t, "8400.00", resp.TotalGross)
	assert.Equal(t, "300.00", resp.TotalDeductions)
	assert.Equal(t, "8100.00", resp.TotalNet)
	assert.NotNil(t, resp.ProcessedAt)

	assert.Equal(t, 1, runs.completed)
	require.Len(t, slips.slips, 2)
	for _, slip := range slips.slips {
		assert.Equal(t, runID, slip.RunID)
	}
}

func TestProcessRunSecondCallNotDraft(t *testing.T) {
	ctx := context.Background()
	runs := newFakeRunRepo()
	salaries := newFakeSalaryRepo()
	slips := &fakePayslipRepo{}

	runID := seedDraftRun(runs)
	seedSalary(salaries, "emp-1", "5000.00")
	seedSalary(salaries, "emp-2", "3000.00")

	svc := newTestPayrollService(runs, salaries, slips, &fakeEmployeeRepo{})

	_, err := svc.ProcessRun(ctx, runID)
	require.NoError(t, err)

	_, err = svc.ProcessRun(ctx, runID)
	assert.ErrorIs(t, err, payroll.ErrRunNotDraft)

	// The settled run keeps exactly one payslip per employee.
	assert.Equal(t, 1, runs.completed)
	require.Len(t, slips.slips, 2)
	seen := map[string]bool{}
	for _, slip := range slips.slips {
		key := slip.RunID + "/" + slip.EmployeeID
		assert.False(t, seen[key])
		seen[key] = true
	}
}

func TestProcessRunCancelledRunNotDraft(t *testing.T) {
	ctx := context.Background()
	runs := newFakeRunRepo()
	salaries := newFakeSalaryRepo()

	runID := seedDraftRun(runs)
	seedSalary(salaries, "emp-1", "5000.00")

	svc := newTestPayrollService(runs, salaries, &fakePayslipRepo{}, &fakeEmployeeRepo{})

	require.NoError(t, svc.CancelRun(ctx, runID))

	_, err := svc.ProcessRun(ctx, runID)
	assert.ErrorIs(t, err, payroll.ErrRunNotDraft)
	assert.Equal(t, 0, runs.completed)
}

func TestProcessRunPayslipCollisionAborts(t *testing.T) {
	ctx := context.Background()
	runs := newFakeRunRepo()
	salaries := newFakeSalaryRepo()
	slips := &fakePayslipRepo{failFor: map[string]error{"emp-2": payroll.ErrPayslipExists}}

	runID := seedDraftRun(runs)
	seedSalary(salaries, "emp-1", "5000.00")
	seedSalary(salaries, "emp-2", "3000.00")

	svc := newTestPayrollService(runs, salaries, slips, &fakeEmployeeRepo{})

	_, err := svc.ProcessRun(ctx, runID)
	assert.ErrorIs(t, err, payroll.ErrPayslipExists)

	// The run never reaches the terminal completed status.
	assert.Equal(t, 0, runs.completed)
}

func TestProcessRunNoActiveSalaries(t *testing.T) {
	ctx := context.Background()
	runs := newFakeRunRepo()
	runID := seedDraftRun(runs)

	svc := newTestPayrollService(runs, newFakeSalaryRepo(), &fakePayslipRepo{}, &fakeEmployeeRepo{})

	_, err := svc.ProcessRun(ctx, runID)
	assert.ErrorIs(t, err, payroll.ErrNoActiveSalaries)
	assert.Equal(t, 0, runs.completed)
}

func TestAssignSalaryDuplicateEffectiveDate(t *testing.T) {
	ctx := context.Background()
	salaries := newFakeSalaryRepo()
	seedSalary(salaries, "emp-1", "5000.00")

	employees := &fakeEmployeeRepo{employees: map[string]*employee.Employee{
		"emp-1": {ID: "emp-1", Status: employee.StatusActive},
	}}

	svc := newTestPayrollService(newFakeRunRepo(), salaries, &fakePayslipRepo{}, employees)

	req := &payroll.CreateSalaryRequest{
		EmployeeID:    "emp-1",
		BasicSalary:   "6000.00",
		EffectiveDate: "2024-01-01",
	}
	_, err := svc.AssignSalary(ctx, req)
	assert.ErrorIs(t, err, payroll.ErrSalaryExists)

	// A later effective date replaces the previous profile.
	req.EffectiveDate = "2024-02-01"
	resp, err := svc.AssignSalary(ctx, req)
	require.NoError(t, err)
	assert.True(t, resp.IsActive)

	active, err := salaries.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "6000.00", active[0].BasicSalary.StringFixed(2))
}
