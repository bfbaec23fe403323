package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/hexahash/attendance-portal-go/internal/pkg/validator"
)

// ComponentResponse represents the response structure for a salary component.
type ComponentResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	IsTaxable bool   `json:"is_taxable"`
	IsActive  bool   `json:"is_active"`
}

// CreateComponentRequest represents the request structure for creating a salary component.
type CreateComponentRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	IsTaxable bool   `json:"is_taxable"`
}

func (r *CreateComponentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.Type, []string{string(ComponentEarning), string(ComponentDeduction)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be either earning or deduction",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateComponentRequest represents the request structure for updating a salary component.
type UpdateComponentRequest struct {
	ID        string  `json:"id"`
	Name      *string `json:"name,omitempty"`
	IsTaxable *bool   `json:"is_taxable,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func (r *UpdateComponentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ComponentValueRequest binds one component to a salary as either a fixed
// amount or a percentage of basic.
type ComponentValueRequest struct {
	ComponentID       string  `json:"component_id"`
	Amount            *string `json:"amount,omitempty"`
	IsPercentage      bool    `json:"is_percentage"`
	PercentageOfBasic *string `json:"percentage_of_basic,omitempty"`
}

func (r *ComponentValueRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ComponentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "component_id",
			Message: "component_id is required",
		})
	}

	if r.IsPercentage {
		if r.PercentageOfBasic == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "percentage_of_basic",
				Message: "percentage_of_basic is required for percentage components",
			})
		} else if pct, err := decimal.NewFromString(*r.PercentageOfBasic); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "percentage_of_basic",
				Message: "percentage_of_basic must be a valid number",
			})
		} else if pct.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "percentage_of_basic",
				Message: "percentage_of_basic must not be negative",
			})
		}
		if r.Amount != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "amount",
				Message: "amount must not be set for percentage components",
			})
		}
	} else {
		if r.Amount == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "amount",
				Message: "amount is required for fixed components",
			})
		} else if amt, err := decimal.NewFromString(*r.Amount); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "amount",
				Message: "amount must be a valid number",
			})
		} else if amt.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "amount",
				Message: "amount must not be negative",
			})
		}
		if r.PercentageOfBasic != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "percentage_of_basic",
				Message: "percentage_of_basic must not be set for fixed components",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CreateSalaryRequest represents the request structure for assigning a salary
// profile to an employee.
type CreateSalaryRequest struct {
	EmployeeID    string                  `json:"employee_id"`
	BasicSalary   string                  `json:"basic_salary"`
	EffectiveDate string                  `json:"effective_date"` // YYYY-MM-DD
	Components    []ComponentValueRequest `json:"components"`
}

func (r *CreateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if basic, err := decimal.NewFromString(r.BasicSalary); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must be a valid number",
		})
	} else if basic.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must not be negative",
		})
	}

	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_date",
			Message: "effective_date must be a valid date in YYYY-MM-DD format",
		})
	}

	for i := range r.Components {
		if err := r.Components[i].Validate(); err != nil {
			if verrs, ok := err.(validator.ValidationErrors); ok {
				errs = append(errs, verrs...)
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SalaryResponse represents the response structure for an employee salary.
type SalaryResponse struct {
	ID            string                   `json:"id"`
	EmployeeID    string                   `json:"employee_id"`
	EmployeeCode  *string                  `json:"employee_code,omitempty"`
	EmployeeName  *string                  `json:"employee_name,omitempty"`
	BasicSalary   string                   `json:"basic_salary"`
	EffectiveDate string                   `json:"effective_date"`
	IsActive      bool                     `json:"is_active"`
	Components    []ComponentValueResponse `json:"components"`
}

// ComponentValueResponse represents one component binding on a salary.
type ComponentValueResponse struct {
	ID                string  `json:"id"`
	ComponentID       string  `json:"component_id"`
	ComponentName     *string `json:"component_name,omitempty"`
	ComponentType     string  `json:"component_type"`
	Amount            string  `json:"amount"`
	IsPercentage      bool    `json:"is_percentage"`
	PercentageOfBasic string  `json:"percentage_of_basic"`
}

// CreatePeriodRequest represents the request structure for creating a payroll period.
type CreatePeriodRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PeriodResponse represents the response structure for a payroll period.
type PeriodResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsClosed  bool   `json:"is_closed"`
}

// CreateRunRequest represents the request structure for creating a payroll run.
type CreateRunRequest struct {
	PeriodID  string  `json:"period_id"`
	CreatedBy *string `json:"-"`
}

func (r *CreateRunRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PeriodID) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_id",
			Message: "period_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RunResponse represents the response structure for a payroll run.
type RunResponse struct {
	ID              string  `json:"id"`
	PeriodID        string  `json:"period_id"`
	PeriodName      *string `json:"period_name,omitempty"`
	Status          string  `json:"status"`
	EmployeeCount   int     `json:"employee_count"`
	TotalGross      string  `json:"total_gross"`
	TotalDeductions string  `json:"total_deductions"`
	TotalNet        string  `json:"total_net"`
	ProcessedAt     *string `json:"processed_at,omitempty"`
}

// PayslipResponse represents the response structure for a payslip.
type PayslipResponse struct {
	ID              string                  `json:"id"`
	RunID           string                  `json:"run_id"`
	EmployeeID      string                  `json:"employee_id"`
	EmployeeCode    *string                 `json:"employee_code,omitempty"`
	EmployeeName    *string                 `json:"employee_name,omitempty"`
	BasicSalary     string                  `json:"basic_salary"`
	TotalEarnings   string                  `json:"total_earnings"`
	TotalDeductions string                  `json:"total_deductions"`
	NetPay          string                  `json:"net_pay"`
	Details         []PayslipDetailResponse `json:"details"`
}

// PayslipDetailResponse represents one component line on a payslip.
type PayslipDetailResponse struct {
	ComponentID   string `json:"component_id"`
	ComponentName string `json:"component_name"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`
}

// RunFilter narrows payroll run listings.
type RunFilter struct {
	PeriodID string
	Status   string
	Page     int
	Limit    int
}

// ListRunResponse is the paginated run list envelope.
type ListRunResponse struct {
	Runs  []RunResponse `json:"runs"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}
