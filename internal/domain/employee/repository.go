package employee

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	Create(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id string) (*Employee, error)
	GetByCode(ctx context.Context, code string) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	List(ctx context.Context, filter *EmployeeFilter) ([]Employee, int, error)
	// ListActiveOn returns employees employed on the given date, used by
	// summary derivation and payroll runs.
	ListActiveOn(ctx context.Context, date time.Time) ([]Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id string) error
}
