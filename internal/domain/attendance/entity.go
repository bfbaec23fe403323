package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// PunchDirection is the direction of a punch event.
type PunchDirection string

const (
	DirectionIn  PunchDirection = "IN"
	DirectionOut PunchDirection = "OUT"
)

// PunchStatus is the approval state of a punch event.
type PunchStatus string

const (
	PunchApproved PunchStatus = "approved"
	PunchPending  PunchStatus = "pending"
	PunchRejected PunchStatus = "rejected"
)

// SummaryStatus is the resolved attendance state for one employee-day.
type SummaryStatus string

const (
	StatusPresent SummaryStatus = "present"
	StatusAbsent  SummaryStatus = "absent"
	StatusHalfDay SummaryStatus = "half_day"
	StatusLeave   SummaryStatus = "leave"
)

// PunchEvent is a single immutable check-in or check-out event.
type PunchEvent struct {
	ID         string
	EmployeeID string
	Direction  PunchDirection
	PunchTime  time.Time
	DeviceID   *string
	GeoLat     *float64
	GeoLong    *float64
	SelfieURL  *string
	Status     PunchStatus
	CreatedAt  time.Time

	// Joined fields
	EmployeeCode *string
	EmployeeName *string
	DeviceName   *string
}

// DailySummary is the resolved attendance record for one employee on one
// calendar date. Unique per (employee, date).
type DailySummary struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	InTime      *time.Time
	OutTime     *time.Time
	WorkedHours *decimal.Decimal
	LateBy      int
	EarlyOut    int
	Status      SummaryStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeCode *string
	EmployeeName *string
}

// MonthlyStats aggregates an employee's summaries over a date range.
type MonthlyStats struct {
	EmployeeID       string
	EmployeeCode     string
	EmployeeName     string
	PresentDays      int
	AbsentDays       int
	HalfDays         int
	LeaveDays        int
	LateDays         int
	TotalLateMinutes int
	TotalHours       decimal.Decimal
}
