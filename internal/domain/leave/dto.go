package leave

import (
	"github.com/hexahash/attendance-portal-go/internal/pkg/validator"
)

// LeaveTypeResponse represents the response structure for a leave type.
type LeaveTypeResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	MaxPerYear int    `json:"max_per_year"`
	IsPaid     bool   `json:"is_paid"`
	IsActive   bool   `json:"is_active"`
}

// CreateLeaveTypeRequest represents the request structure for creating a leave type.
type CreateLeaveTypeRequest struct {
	Name       string `json:"name"`
	MaxPerYear int    `json:"max_per_year"`
	IsPaid     bool   `json:"is_paid"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.MaxPerYear <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_per_year",
			Message: "max_per_year must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ApplyLeaveRequest represents the request structure for applying for leave.
type ApplyLeaveRequest struct {
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	StartDate   string `json:"start_date"` // YYYY-MM-DD
	EndDate     string `json:"end_date"`   // YYYY-MM-DD
	Reason      string `json:"reason"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
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

// ApplicationResponse represents the response structure for a leave application.
type ApplicationResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeCode  *string `json:"employee_code,omitempty"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName *string `json:"leave_type_name,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	TotalDays     int     `json:"total_days"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	DecidedBy     *string `json:"decided_by,omitempty"`
	DecidedAt     *string `json:"decided_at,omitempty"`
}

// ApplicationFilter narrows leave application listings.
type ApplicationFilter struct {
	EmployeeID string
	Status     string
	Page       int
	Limit      int
}

// ListApplicationResponse is the paginated application list envelope.
type ListApplicationResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Total        int                   `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
}
