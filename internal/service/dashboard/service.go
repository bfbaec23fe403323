package dashboard

import (
	"context"
	"time"

	"github.com/hexahash/attendance-portal-go/internal/domain/dashboard"
	"github.com/hexahash/attendance-portal-go/internal/domain/user"
)

const recentActivityLimit = 20

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	userRepo      user.UserRepository
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository, userRepo user.UserRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		userRepo:      userRepo,
	}
}

// GetOverview implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetOverview(ctx context.Context) (*dashboard.Overview, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	overview, err := s.dashboardRepo.Overview(ctx, today)
	if err != nil {
		return nil, err
	}

	logs, err := s.userRepo.ListActivity(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	overview.RecentActivity = make([]dashboard.ActivityEntry, 0, len(logs))
	for _, l := range logs {
		entry := dashboard.ActivityEntry{
			Action:    l.Action,
			Timestamp: l.Timestamp.Format(time.RFC3339),
		}
		if l.Username != nil {
			entry.Username = *l.Username
		}
		overview.RecentActivity = append(overview.RecentActivity, entry)
	}

	return overview, nil
}
