package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h *Holiday) error
	GetByID(ctx context.Context, id string) (*Holiday, error)
	// ListBetween returns holidays effective within [from, to], including
	// recurring holidays whose month/day falls in the range.
	ListBetween(ctx context.Context, from, to time.Time) ([]Holiday, error)
	List(ctx context.Context, year int) ([]Holiday, error)
	Update(ctx context.Context, h *Holiday) error
	Delete(ctx context.Context, id string) error
}
