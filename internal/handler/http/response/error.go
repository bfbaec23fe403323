package response

import (
	"errors"
	"net/http"

	"github.com/hexahash/attendance-portal-go/internal/domain/attendance"
	"github.com/hexahash/attendance-portal-go/internal/domain/auth"
	"github.com/hexahash/attendance-portal-go/internal/domain/employee"
	"github.com/hexahash/attendance-portal-go/internal/domain/leave"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/department"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/designation"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/device"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/holiday"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/shift"
	"github.com/hexahash/attendance-portal-go/internal/domain/payroll"
	"github.com/hexahash/attendance-portal-go/internal/domain/settings"
	"github.com/hexahash/attendance-portal-go/internal/domain/user"
	"github.com/hexahash/attendance-portal-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, auth.ErrPasswordMismatch):
		BadRequest(w, "Current password is incorrect", nil)
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, designation.ErrDesignationNotFound):
		NotFound(w, "Designation not found")
	case errors.Is(err, designation.ErrDesignationNameExists):
		Conflict(w, "Designation name already exists")
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftNameExists):
		Conflict(w, "Shift name already exists")
	case errors.Is(err, shift.ErrShiftInUse):
		Conflict(w, "Shift is assigned to employees")
	case errors.Is(err, device.ErrDeviceNotFound):
		NotFound(w, "Device not found")
	case errors.Is(err, device.ErrDeviceNameExists):
		Conflict(w, "Device name already exists")
	case errors.Is(err, device.ErrDeviceInactive):
		BadRequest(w, "Device is inactive", nil)
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already exists on that date")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrPunchNotFound):
		NotFound(w, "Punch not found")
	case errors.Is(err, attendance.ErrPunchAlreadyProcessed):
		Conflict(w, "Punch already processed")
	case errors.Is(err, attendance.ErrInvalidDirection):
		BadRequest(w, "Direction must be in or out", nil)
	case errors.Is(err, attendance.ErrSummaryNotFound):
		NotFound(w, "Daily summary not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrApplicationNotFound):
		NotFound(w, "Leave application not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave application already processed")
	case errors.Is(err, leave.ErrLeaveOverlaps):
		Conflict(w, "Leave overlaps an existing application")
	case errors.Is(err, leave.ErrLeaveBalanceExceeded):
		BadRequest(w, "Leave balance exceeded", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrComponentNotFound):
		NotFound(w, "Salary component not found")
	case errors.Is(err, payroll.ErrComponentNameUsed):
		Conflict(w, "Component name already in use")
	case errors.Is(err, payroll.ErrSalaryNotFound):
		NotFound(w, "Salary not found")
	case errors.Is(err, payroll.ErrSalaryExists):
		Conflict(w, "An active salary with this effective date already exists")
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, payroll.ErrPeriodClosed):
		Conflict(w, "Payroll period is closed")
	case errors.Is(err, payroll.ErrPeriodOverlaps):
		Conflict(w, "Payroll period overlaps an existing one")
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrRunNotDraft):
		Conflict(w, "Payroll run is not in draft state")
	case errors.Is(err, payroll.ErrRunAlreadyFinal):
		Conflict(w, "Payroll run is already finalized")
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrPayslipExists):
		Conflict(w, "Payslip already exists for this run and employee")
	case errors.Is(err, payroll.ErrNoActiveSalaries):
		BadRequest(w, "No active salary assignments to process", nil)

	// Settings domain errors
	case errors.Is(err, settings.ErrProfileNotFound):
		NotFound(w, "Company profile not found")
	case errors.Is(err, settings.ErrRuleNotFound):
		NotFound(w, "Attendance rule not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
