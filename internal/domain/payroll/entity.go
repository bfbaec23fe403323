package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type ComponentType string

const (
	ComponentEarning   ComponentType = "earning"
	ComponentDeduction ComponentType = "deduction"
)

type RunStatus string

const (
	RunDraft      RunStatus = "draft"
	RunProcessing RunStatus = "processing"
	RunCompleted  RunStatus = "completed"
	RunCancelled  RunStatus = "cancelled"
)

// SalaryComponent is a named earning or deduction line (HRA, PF, bonus)
// that employee salaries attach values to.
type SalaryComponent struct {
	ID        string
	Name      string
	Type      ComponentType
	IsTaxable bool
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeeSalary is the active salary profile for an employee. Only one
// profile per employee is active at a time; effective date records when it
// took over from the previous one.
type EmployeeSalary struct {
	ID            string
	EmployeeID    string
	BasicSalary   decimal.Decimal
	EffectiveDate time.Time
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	EmployeeCode *string
	EmployeeName *string
}

// SalaryComponentValue binds a component to a salary as either a fixed
// amount or a percentage of basic. Exactly one of Amount and
// PercentageOfBasic is meaningful, selected by IsPercentage.
type SalaryComponentValue struct {
	ID                string
	EmployeeSalaryID  string
	ComponentID       string
	Amount            decimal.Decimal
	IsPercentage      bool
	PercentageOfBasic decimal.Decimal

	ComponentName *string
	ComponentType ComponentType
}

// PayrollPeriod is the calendar window a run settles. Closed periods
// accept no new runs.
type PayrollPeriod struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	IsClosed  bool
}

// PayrollRun is one execution of the payroll calculator over a period.
// Status moves draft → processing → completed, or draft → cancelled;
// completed and cancelled are terminal.
type PayrollRun struct {
	ID              string
	PeriodID        string
	Status          RunStatus
	EmployeeCount   int
	TotalGross      decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNet        decimal.Decimal
	ProcessedAt     *time.Time
	CreatedBy       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	PeriodName *string
}

// Payslip is one employee's settlement inside a run, unique per
// (run, employee).
type Payslip struct {
	ID              string
	RunID           string
	EmployeeID      string
	BasicSalary     decimal.Decimal
	TotalEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	Details         []PayslipDetail
	CreatedAt       time.Time

	EmployeeCode *string
	EmployeeName *string
}

// PayslipDetail is one resolved component line on a payslip.
type PayslipDetail struct {
	ID            string
	PayslipID     string
	ComponentID   string
	ComponentName string
	Type          ComponentType
	Amount        decimal.Decimal
}
