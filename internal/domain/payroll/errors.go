package payroll

import "errors"

var (
	ErrComponentNotFound = errors.New("salary component not found")
	ErrComponentNameUsed = errors.New("salary component name already exists")
	ErrSalaryNotFound    = errors.New("employee salary not found")
	ErrSalaryExists      = errors.New("an active salary with this effective date already exists")
	ErrPeriodNotFound    = errors.New("payroll period not found")
	ErrPeriodClosed      = errors.New("payroll period is closed")
	ErrPeriodOverlaps    = errors.New("payroll period overlaps an existing period")
	ErrRunNotFound       = errors.New("payroll run not found")
	ErrRunNotDraft       = errors.New("payroll run is not in draft status")
	ErrRunAlreadyFinal   = errors.New("payroll run is already in a terminal status")
	ErrPayslipNotFound   = errors.New("payslip not found")
	ErrPayslipExists     = errors.New("payslip already exists for this run and employee")
	ErrNoActiveSalaries  = errors.New("no active employee salaries to process")
)
