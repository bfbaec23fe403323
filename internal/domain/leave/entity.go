package leave

import "time"

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

// LeaveType bounds how many days per year an employee can take of a given
// kind of leave.
type LeaveType struct {
	ID         string
	Name       string
	MaxPerYear int
	IsPaid     bool
	IsActive   bool
}

// LeaveApplication is a request for a contiguous range of days off.
// Approving it marks the covered working days' attendance summaries as
// leave.
type LeaveApplication struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	StartDate   time.Time
	EndDate     time.Time
	TotalDays   int
	Reason      string
	Status      ApplicationStatus
	DecidedBy   *string
	DecidedAt   *time.Time
	CreatedAt   time.Time

	EmployeeCode  *string
	EmployeeName  *string
	LeaveTypeName *string
}
