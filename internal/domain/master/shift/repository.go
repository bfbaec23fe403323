package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, s *Shift) error
	GetByID(ctx context.Context, id string) (*Shift, error)
	GetByName(ctx context.Context, name string) (*Shift, error)
	// GetByEmployeeID returns the shift currently assigned to the employee.
	GetByEmployeeID(ctx context.Context, employeeID string) (*Shift, error)
	List(ctx context.Context, activeOnly bool) ([]Shift, error)
	Update(ctx context.Context, s *Shift) error
	Delete(ctx context.Context, id string) error
}
