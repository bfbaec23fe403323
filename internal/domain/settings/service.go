package settings

import "context"

type SettingsService interface {
	GetProfile(ctx context.Context) (*ProfileResponse, error)
	UpdateProfile(ctx context.Context, req *UpdateProfileRequest) (*ProfileResponse, error)
	GetRule(ctx context.Context) (*RuleResponse, error)
	UpdateRule(ctx context.Context, req *UpdateRuleRequest) (*RuleResponse, error)
	GetWorkWeek(ctx context.Context) (*WorkWeekResponse, error)
	UpdateWorkWeek(ctx context.Context, req *UpdateWorkWeekRequest) (*WorkWeekResponse, error)
}
