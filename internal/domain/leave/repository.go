package leave

import (
	"context"
	"time"
)

type LeaveTypeRepository interface {
	Create(ctx context.Context, t *LeaveType) error
	GetByID(ctx context.Context, id string) (*LeaveType, error)
	List(ctx context.Context, activeOnly bool) ([]LeaveType, error)
	Update(ctx context.Context, t *LeaveType) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, a *LeaveApplication) error
	GetByID(ctx context.Context, id string) (*LeaveApplication, error)
	List(ctx context.Context, filter *ApplicationFilter) ([]LeaveApplication, int, error)
	// HasOverlap reports whether the employee has a pending or approved
	// application intersecting [start, end].
	HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	// DaysTakenInYear sums total days of approved applications of the
	// given type starting in the year.
	DaysTakenInYear(ctx context.Context, employeeID, leaveTypeID string, year int) (int, error)
	// ApprovedCovering returns the approved application covering the date,
	// if any. Used by summary derivation.
	ApprovedCovering(ctx context.Context, employeeID string, date time.Time) (*LeaveApplication, error)
	UpdateStatus(ctx context.Context, id string, status ApplicationStatus, decidedBy string, decidedAt time.Time) error
}
