package dashboard

import (
	"context"
	"time"
)

// DashboardRepository serves the aggregate counts directly from SQL; the
// numbers are read-only and recomputed on every request.
type DashboardRepository interface {
	Overview(ctx context.Context, today time.Time) (*Overview, error)
}
