package employee

import (
	"mime/multipart"

	"github.com/hexahash/attendance-portal-go/internal/pkg/validator"
)

// EmployeeResponse represents the response structure for an employee.
type EmployeeResponse struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	Mobile          *string `json:"mobile,omitempty"`
	DepartmentID    *string `json:"department_id,omitempty"`
	DepartmentName  *string `json:"department_name,omitempty"`
	DesignationID   *string `json:"designation_id,omitempty"`
	DesignationName *string `json:"designation_name,omitempty"`
	ShiftID         *string `json:"shift_id,omitempty"`
	ShiftName       *string `json:"shift_name,omitempty"`
	ManagerID       *string `json:"manager_id,omitempty"`
	ManagerName     *string `json:"manager_name,omitempty"`
	JoinDate        string  `json:"join_date"`
	LeaveDate       *string `json:"leave_date,omitempty"`
	Status          string  `json:"status"`
	PhotoURL        *string `json:"photo_url,omitempty"`
}

// CreateEmployeeRequest represents the request structure for creating an employee.
type CreateEmployeeRequest struct {
	Code          string                `json:"code"`
	FirstName     string                `json:"first_name"`
	LastName      string                `json:"last_name"`
	Email         string                `json:"email"`
	Mobile        *string               `json:"mobile,omitempty"`
	DepartmentID  *string               `json:"department_id,omitempty"`
	DesignationID *string               `json:"designation_id,omitempty"`
	ShiftID       *string               `json:"shift_id,omitempty"`
	ManagerID     *string               `json:"manager_id,omitempty"`
	JoinDate      string                `json:"join_date"` // YYYY-MM-DD
	PhotoFile     multipart.File        `json:"-"`
	PhotoHeader   *multipart.FileHeader `json:"-"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	} else if !validator.IsValidEmployeeCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must match the EMP### format",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest represents the request structure for updating an employee.
type UpdateEmployeeRequest struct {
	ID            string                `json:"id"`
	FirstName     *string               `json:"first_name,omitempty"`
	LastName      *string               `json:"last_name,omitempty"`
	Email         *string               `json:"email,omitempty"`
	Mobile        *string               `json:"mobile,omitempty"`
	DepartmentID  *string               `json:"department_id,omitempty"`
	DesignationID *string               `json:"designation_id,omitempty"`
	ShiftID       *string               `json:"shift_id,omitempty"`
	ManagerID     *string               `json:"manager_id,omitempty"`
	LeaveDate     *string               `json:"leave_date,omitempty"`
	Status        *string               `json:"status,omitempty"`
	PhotoFile     multipart.File        `json:"-"`
	PhotoHeader   *multipart.FileHeader `json:"-"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if r.LeaveDate != nil {
		if _, ok := validator.IsValidDate(*r.LeaveDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_date",
				Message: "leave_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be either active or inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeFilter narrows List queries.
type EmployeeFilter struct {
	Search       string
	DepartmentID string
	Status       string
	Page         int
	Limit        int
}

// ListEmployeeResponse is the paginated list envelope.
type ListEmployeeResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int                `json:"total"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
}
