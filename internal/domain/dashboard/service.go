package dashboard

import "context"

type DashboardService interface {
	GetOverview(ctx context.Context) (*Overview, error)
}
