package employee

import "time"

type EmploymentStatus string

const (
	StatusActive   EmploymentStatus = "active"
	StatusInactive EmploymentStatus = "inactive"
)

// Employee is the person every punch, summary and payslip hangs off. Code
// is the human-facing identifier (EMP001) used at the punch devices; ID is
// the internal key.
type Employee struct {
	ID            string
	Code          string
	FirstName     string
	LastName      string
	Email         string
	Mobile        *string
	DepartmentID  *string
	DesignationID *string
	ShiftID       *string
	ManagerID     *string
	JoinDate      time.Time
	LeaveDate     *time.Time
	Status        EmploymentStatus
	PhotoURL      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined display fields, populated by list queries.
	DepartmentName  *string
	DesignationName *string
	ShiftName       *string
	ManagerName     *string
}

func (e *Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// ActiveOn reports whether the employee was employed on the given date.
func (e *Employee) ActiveOn(date time.Time) bool {
	if date.Before(truncateToDay(e.JoinDate)) {
		return false
	}
	if e.LeaveDate != nil && date.After(truncateToDay(*e.LeaveDate)) {
		return false
	}
	return true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
