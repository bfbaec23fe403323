package attendance

import (
	"context"
	"time"
)

// PunchRepository defines data access methods for punch events.
type PunchRepository interface {
	Create(ctx context.Context, punch PunchEvent) (PunchEvent, error)
	GetByID(ctx context.Context, id string) (PunchEvent, error)
	// GetByEmployeeAndDate returns the employee's punches for one calendar
	// date in chronological order, optionally restricted to approved ones.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, approvedOnly bool) ([]PunchEvent, error)
	List(ctx context.Context, filter PunchFilter) ([]PunchEvent, int64, error)
	UpdateStatus(ctx context.Context, id string, status PunchStatus) error
}

// SummaryRepository defines data access methods for daily summaries.
type SummaryRepository interface {
	// Upsert inserts or replaces the summary for (employee, date).
	Upsert(ctx context.Context, summary DailySummary) (DailySummary, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (DailySummary, error)
	List(ctx context.Context, filter SummaryFilter) ([]DailySummary, int64, error)
	// SetStatusForRange marks every summary in [from, to] for the employee
	// with the given status, creating absent rows where none exist.
	SetStatusForRange(ctx context.Context, employeeID string, from, to time.Time, status SummaryStatus) error
	// Stats aggregates summaries per employee over [from, to].
	Stats(ctx context.Context, from, to time.Time, employeeIDs []string) ([]MonthlyStats, error)
}
