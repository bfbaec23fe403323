package device

import "context"

type DeviceRepository interface {
	Create(ctx context.Context, d *Device) error
	GetByID(ctx context.Context, id string) (*Device, error)
	GetByName(ctx context.Context, name string) (*Device, error)
	List(ctx context.Context, activeOnly bool) ([]Device, error)
	Update(ctx context.Context, d *Device) error
	TouchLastSeen(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
