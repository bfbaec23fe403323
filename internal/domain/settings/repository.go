package settings

import "context"

type SettingsRepository interface {
	GetProfile(ctx context.Context) (*CompanyProfile, error)
	UpsertProfile(ctx context.Context, p *CompanyProfile) error
	// GetRule returns the attendance rule, or the defaults when no row
	// exists yet.
	GetRule(ctx context.Context) (*AttendanceRule, error)
	UpsertRule(ctx context.Context, r *AttendanceRule) error
	GetWorkWeek(ctx context.Context) ([]WorkWeekDay, error)
	SetWorkWeek(ctx context.Context, days []WorkWeekDay) error
}
