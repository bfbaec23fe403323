package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, d *Department) error
	GetByID(ctx context.Context, id string) (*Department, error)
	GetByName(ctx context.Context, name string) (*Department, error)
	List(ctx context.Context, activeOnly bool) ([]Department, error)
	Update(ctx context.Context, d *Department) error
	Delete(ctx context.Context, id string) error
}
