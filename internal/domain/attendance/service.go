package attendance

import (
	"context"
)

// AttendanceService defines business logic for punch events and daily
// summaries.
type AttendanceService interface {
	// RecordPunch stores a punch event and upserts the day's summary.
	RecordPunch(ctx context.Context, req RecordPunchRequest) (PunchResponse, error)

	// GetPunch retrieves a single punch event by ID
	GetPunch(ctx context.Context, id string) (PunchResponse, error)

	// ListPunches retrieves punch events with filters and pagination
	ListPunches(ctx context.Context, filter PunchFilter) (ListPunchResponse, error)

	// ApprovePunch approves a pending punch event
	ApprovePunch(ctx context.Context, id string) (PunchResponse, error)

	// RejectPunch rejects a pending punch event
	RejectPunch(ctx context.Context, id string) (PunchResponse, error)

	// GetSummary retrieves the daily summary for an employee-date
	GetSummary(ctx context.Context, employeeID string, date string) (SummaryResponse, error)

	// ListSummaries retrieves daily summaries with filters and pagination
	ListSummaries(ctx context.Context, filter SummaryFilter) (ListSummaryResponse, error)

	// DeriveSummaries recomputes summaries for a date range from the stored
	// punches (the batch path; also run nightly).
	DeriveSummaries(ctx context.Context, req DeriveSummariesRequest) (int, error)

	// Stats aggregates summaries per employee over an explicit range.
	Stats(ctx context.Context, dateFrom, dateTo string, employeeIDs []string) ([]StatsResponse, error)
}
