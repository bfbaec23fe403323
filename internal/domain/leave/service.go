package leave

import "context"

type LeaveService interface {
	CreateLeaveType(ctx context.Context, req *CreateLeaveTypeRequest) (*LeaveTypeResponse, error)
	ListLeaveTypes(ctx context.Context, activeOnly bool) ([]LeaveTypeResponse, error)

	Apply(ctx context.Context, req *ApplyLeaveRequest) (*ApplicationResponse, error)
	GetApplication(ctx context.Context, id string) (*ApplicationResponse, error)
	ListApplications(ctx context.Context, filter *ApplicationFilter) (*ListApplicationResponse, error)
	// Approve marks the application approved and flips the covered working
	// days' summaries to leave status.
	Approve(ctx context.Context, id, decidedBy string) error
	Reject(ctx context.Context, id, decidedBy string) error
}
