package designation

import "context"

type DesignationRepository interface {
	Create(ctx context.Context, d *Designation) error
	GetByID(ctx context.Context, id string) (*Designation, error)
	GetByName(ctx context.Context, name string) (*Designation, error)
	List(ctx context.Context, activeOnly bool) ([]Designation, error)
	Update(ctx context.Context, d *Designation) error
	Delete(ctx context.Context, id string) error
}
