package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/hexahash/attendance-portal-go/internal/domain/employee"
	"github.com/hexahash/attendance-portal-go/internal/domain/payroll"
	"github.com/hexahash/attendance-portal-go/internal/pkg/database"
	"github.com/hexahash/attendance-portal-go/internal/pkg/validator"
	"github.com/hexahash/attendance-portal-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db            *database.DB
	componentRepo payroll.ComponentRepository
	salaryRepo    payroll.SalaryRepository
	periodRepo    payroll.PeriodRepository
	runRepo       payroll.RunRepository
	payslipRepo   payroll.PayslipRepository
	employeeRepo  employee.EmployeeRepository

	// transact runs fn inside a database transaction.
	transact func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewPayrollService(
	db *database.DB,
	componentRepo payroll.ComponentRepository,
	salaryRepo payroll.SalaryRepository,
	periodRepo payroll.PeriodRepository,
	runRepo payroll.RunRepository,
	payslipRepo payroll.PayslipRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	s := &PayrollServiceImpl{
		db:            db,
		componentRepo: componentRepo,
		salaryRepo:    salaryRepo,
		periodRepo:    periodRepo,
		runRepo:       runRepo,
		payslipRepo:   payslipRepo,
		employeeRepo:  employeeRepo,
	}
	s.transact = func(ctx context.Context, fn func(tx pgx.Tx) error) error {
		return postgresql.WithTransaction(ctx, s.db, fn)
	}
	return s
}

// CreateComponent implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreateComponent(ctx context.Context, req *payroll.CreateComponentRequest) (*payroll.ComponentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.componentRepo.GetByName(ctx, req.Name); err == nil {
		return nil, payroll.ErrComponentNameUsed
	}

	component := payroll.SalaryComponent{
		Name:      req.Name,
		Type:      payroll.ComponentType(req.Type),
		IsTaxable: req.IsTaxable,
		IsActive:  true,
	}
	if err := s.componentRepo.Create(ctx, &component); err != nil {
		return nil, err
	}

	return toComponentResponse(&component), nil
}

// UpdateComponent implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpdateComponent(ctx context.Context, req *payroll.UpdateComponentRequest) (*payroll.ComponentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	component, err := s.componentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != component.Name {
		if _, err := s.componentRepo.GetByName(ctx, *req.Name); err == nil {
			return nil, payroll.ErrComponentNameUsed
		}
		component.Name = *req.Name
	}
	if req.IsTaxable != nil {
		component.IsTaxable = *req.IsTaxable
	}
	if req.IsActive != nil {
		component.IsActive = *req.IsActive
	}

	if err := s.componentRepo.Update(ctx, component); err != nil {
		return nil, err
	}

	return toComponentResponse(component), nil
}

// ListComponents implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListComponents(ctx context.Context, activeOnly bool) ([]payroll.ComponentResponse, error) {
	components, err := s.componentRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	resp := make([]payroll.ComponentResponse, 0, len(components))
	for i := range components {
		resp = append(resp, *toComponentResponse(&components[i]))
	}

	return resp, nil
}

// AssignSalary implements payroll.PayrollService. A new profile replaces
// the employee's previous active one inside the same transaction.
func (s *PayrollServiceImpl) AssignSalary(ctx context.Context, req *payroll.CreateSalaryRequest) (*payroll.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	basic, _ := decimal.NewFromString(req.BasicSalary)
	effectiveDate, _ := validator.IsValidDate(req.EffectiveDate)

	// Re-assigning with the current profile's effective date is a
	// duplicate, not a replacement.
	if current, err := s.salaryRepo.GetActiveByEmployee(ctx, req.EmployeeID); err == nil && current.EffectiveDate.Equal(effectiveDate) {
		return nil, payroll.ErrSalaryExists
	}

	values := make([]payroll.SalaryComponentValue, 0, len(req.Components))
	for _, cv := range req.Components {
		component, err := s.componentRepo.GetByID(ctx, cv.ComponentID)
		if err != nil {
			return nil, err
		}

		value := payroll.SalaryComponentValue{
			ComponentID:   component.ID,
			IsPercentage:  cv.IsPercentage,
			ComponentName: &component.Name,
			ComponentType: component.Type,
		}
		if cv.IsPercentage {
			value.PercentageOfBasic, _ = decimal.NewFromString(*cv.PercentageOfBasic)
		} else {
			value.Amount, _ = decimal.NewFromString(*cv.Amount)
		}
		values = append(values, value)
	}

	salary := payroll.EmployeeSalary{
		EmployeeID:    req.EmployeeID,
		BasicSalary:   basic,
		EffectiveDate: effectiveDate,
		IsActive:      true,
	}

	err := s.transact(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.salaryRepo.Deactivate(txCtx, req.EmployeeID); err != nil {
			return err
		}
		return s.salaryRepo.Create(txCtx, &salary, values)
	})
	if err != nil {
		return nil, err
	}

	return toSalaryResponse(&salary, values), nil
}

// GetEmployeeSalary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetEmployeeSalary(ctx context.Context, employeeID string) (*payroll.SalaryResponse, error) {
	salary, err := s.salaryRepo.GetActiveByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	values, err := s.salaryRepo.GetValues(ctx, salary.ID)
	if err != nil {
		return nil, err
	}

	return toSalaryResponse(salary, values), nil
}

// CreatePeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreatePeriod(ctx context.Context, req *payroll.CreatePeriodRequest) (*payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	overlaps, err := s.periodRepo.Overlapping(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, payroll.ErrPeriodOverlaps
	}

	period := payroll.PayrollPeriod{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
	}
	if err := s.periodRepo.Create(ctx, &period); err != nil {
		return nil, err
	}

	return toPeriodResponse(&period), nil
}

// ListPeriods implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPeriods(ctx context.Context) ([]payroll.PeriodResponse, error) {
	periods, err := s.periodRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]payroll.PeriodResponse, 0, len(periods))
	for i := range periods {
		resp = append(resp, *toPeriodResponse(&periods[i]))
	}

	return resp, nil
}

// ClosePeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) ClosePeriod(ctx context.Context, id string) error {
	period, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if period.IsClosed {
		return payroll.ErrPeriodClosed
	}

	return s.periodRepo.Close(ctx, id)
}

// CreateRun implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreateRun(ctx context.Context, req *payroll.CreateRunRequest) (*payroll.RunResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	period, err := s.periodRepo.GetByID(ctx, req.PeriodID)
	if err != nil {
		return nil, err
	}
	if period.IsClosed {
		return nil, payroll.ErrPeriodClosed
	}

	run := payroll.PayrollRun{
		PeriodID:        period.ID,
		Status:          payroll.RunDraft,
		TotalGross:      decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNet:        decimal.Zero,
		CreatedBy:       req.CreatedBy,
		PeriodName:      &period.Name,
	}
	if err := s.runRepo.Create(ctx, &run); err != nil {
		return nil, err
	}

	return toRunResponse(&run), nil
}

// GetRun implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetRun(ctx context.Context, id string) (*payroll.RunResponse, error) {
	run, err := s.runRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRunResponse(run), nil
}

// ListRuns implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRuns(ctx context.Context, filter *payroll.RunFilter) (*payroll.ListRunResponse, error) {
	runs, total, err := s.runRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &payroll.ListRunResponse{
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
		Runs:  make([]payroll.RunResponse, 0, len(runs)),
	}
	for i := range runs {
		resp.Runs = append(resp.Runs, *toRunResponse(&runs[i]))
	}

	return resp, nil
}

// ProcessRun implements payroll.PayrollService. The whole pass runs in one
// transaction: the draft claim, every payslip insert, and the final totals
// update commit together or not at all. A second invocation loses the
// claim and gets ErrRunNotDraft.
func (s *PayrollServiceImpl) ProcessRun(ctx context.Context, id string) (*payroll.RunResponse, error) {
	run, err := s.runRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.transact(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		claimed, err := s.runRepo.Claim(txCtx, id)
		if err != nil {
			return err
		}
		if !claimed {
			return payroll.ErrRunNotDraft
		}

		salaries, err := s.salaryRepo.ListActive(txCtx)
		if err != nil {
			return err
		}
		if len(salaries) == 0 {
			return payroll.ErrNoActiveSalaries
		}

		totalGross := decimal.Zero
		totalDeductions := decimal.Zero
		totalNet := decimal.Zero

		for i := range salaries {
			values, err := s.salaryRepo.GetValues(txCtx, salaries[i].ID)
			if err != nil {
				return err
			}

			slip := BuildPayslip(salaries[i], values)
			slip.RunID = id

			// A duplicate (run, employee) payslip aborts the whole run.
			if err := s.payslipRepo.Create(txCtx, &slip); err != nil {
				return fmt.Errorf("failed to settle employee %s: %w", salaries[i].EmployeeID, err)
			}

			totalGross = totalGross.Add(slip.TotalEarnings)
			totalDeductions = totalDeductions.Add(slip.TotalDeductions)
			totalNet = totalNet.Add(slip.NetPay)
		}

		now := time.Now()
		run.EmployeeCount = len(salaries)
		run.TotalGross = totalGross
		run.TotalDeductions = totalDeductions
		run.TotalNet = totalNet
		run.ProcessedAt = &now

		return s.runRepo.Complete(txCtx, run)
	})
	if err != nil {
		return nil, err
	}

	return toRunResponse(run), nil
}

// CancelRun implements payroll.PayrollService.
func (s *PayrollServiceImpl) CancelRun(ctx context.Context, id string) error {
	if _, err := s.runRepo.GetByID(ctx, id); err != nil {
		return err
	}

	cancelled, err := s.runRepo.Cancel(ctx, id)
	if err != nil {
		return err
	}
	if !cancelled {
		return payroll.ErrRunNotDraft
	}

	return nil
}

// GetPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, id string) (*payroll.PayslipResponse, error) {
	slip, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPayslipResponse(slip), nil
}

// ListRunPayslips implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRunPayslips(ctx context.Context, runID string) ([]payroll.PayslipResponse, error) {
	if _, err := s.runRepo.GetByID(ctx, runID); err != nil {
		return nil, err
	}

	slips, err := s.payslipRepo.ListByRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	resp := make([]payroll.PayslipResponse, 0, len(slips))
	for i := range slips {
		resp = append(resp, *toPayslipResponse(&slips[i]))
	}

	return resp, nil
}

// ListEmployeePayslips implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListEmployeePayslips(ctx context.Context, employeeID string, limit int) ([]payroll.PayslipResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	slips, err := s.payslipRepo.ListByEmployee(ctx, employeeID, limit)
	if err != nil {
		return nil, err
	}

	resp := make([]payroll.PayslipResponse, 0, len(slips))
	for i := range slips {
		resp = append(resp, *toPayslipResponse(&slips[i]))
	}

	return resp, nil
}

func toComponentResponse(c *payroll.SalaryComponent) *payroll.ComponentResponse {
	return &payroll.ComponentResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      string(c.Type),
		IsTaxable: c.IsTaxable,
		IsActive:  c.IsActive,
	}
}

func toSalaryResponse(s *payroll.EmployeeSalary, values []payroll.SalaryComponentValue) *payroll.SalaryResponse {
	resp := &payroll.SalaryResponse{
		ID:            s.ID,
		EmployeeID:    s.EmployeeID,
		EmployeeCode:  s.EmployeeCode,
		EmployeeName:  s.EmployeeName,
		BasicSalary:   s.BasicSalary.StringFixed(2),
		EffectiveDate: s.EffectiveDate.Format("2006-01-02"),
		IsActive:      s.IsActive,
		Components:    make([]payroll.ComponentValueResponse, 0, len(values)),
	}
	for _, v := range values {
		resp.Components = append(resp.Components, payroll.ComponentValueResponse{
			ID:                v.ID,
			ComponentID:       v.ComponentID,
			ComponentName:     v.ComponentName,
			ComponentType:     string(v.ComponentType),
			Amount:            v.Amount.StringFixed(2),
			IsPercentage:      v.IsPercentage,
			PercentageOfBasic: v.PercentageOfBasic.String(),
		})
	}
	return resp
}

func toPeriodResponse(p *payroll.PayrollPeriod) *payroll.PeriodResponse {
	return &payroll.PeriodResponse{
		ID:        p.ID,
		Name:      p.Name,
		StartDate: p.StartDate.Format("2006-01-02"),
		EndDate:   p.EndDate.Format("2006-01-02"),
		IsClosed:  p.IsClosed,
	}
}

func toRunResponse(r *payroll.PayrollRun) *payroll.RunResponse {
	resp := &payroll.RunResponse{
		ID:              r.ID,
		PeriodID:        r.PeriodID,
		PeriodName:      r.PeriodName,
		Status:          string(r.Status),
		EmployeeCount:   r.EmployeeCount,
		TotalGross:      r.TotalGross.StringFixed(2),
		TotalDeductions: r.TotalDeductions.StringFixed(2),
		TotalNet:        r.TotalNet.StringFixed(2),
	}
	if r.ProcessedAt != nil {
		t := r.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &t
	}
	return resp
}

func toPayslipResponse(p *payroll.Payslip) *payroll.PayslipResponse {
	resp := &payroll.PayslipResponse{
		ID:              p.ID,
		RunID:           p.RunID,
		EmployeeID:      p.EmployeeID,
		EmployeeCode:    p.EmployeeCode,
		EmployeeName:    p.EmployeeName,
		BasicSalary:     p.BasicSalary.StringFixed(2),
		TotalEarnings:   p.TotalEarnings.StringFixed(2),
		TotalDeductions: p.TotalDeductions.StringFixed(2),
		NetPay:          p.NetPay.StringFixed(2),
		Details:         make([]payroll.PayslipDetailResponse, 0, len(p.Details)),
	}
	for _, d := range p.Details {
		resp.Details = append(resp.Details, payroll.PayslipDetailResponse{
			ComponentID:   d.ComponentID,
			ComponentName: d.ComponentName,
			Type:          string(d.Type),
			Amount:        d.Amount.StringFixed(2),
		})
	}
	return resp
}
