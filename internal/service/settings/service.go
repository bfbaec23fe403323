package settings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/hexahash/attendance-portal-go/internal/domain/settings"
	"github.com/hexahash/attendance-portal-go/internal/service/file"
)

type SettingsServiceImpl struct {
	settingsRepo settings.SettingsRepository
	fileService  file.FileService
}

func NewSettingsService(settingsRepo settings.SettingsRepository, fileService file.FileService) settings.SettingsService {
	return &SettingsServiceImpl{
		settingsRepo: settingsRepo,
		fileService:  fileService,
	}
}

// GetProfile implements settings.SettingsService.
func (s *SettingsServiceImpl) GetProfile(ctx context.Context) (*settings.ProfileResponse, error) {
	p, err := s.settingsRepo.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(p), nil
}

// UpdateProfile implements settings.SettingsService.
func (s *SettingsServiceImpl) UpdateProfile(ctx context.Context, req *settings.UpdateProfileRequest) (*settings.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.settingsRepo.GetProfile(ctx)
	if err != nil {
		if !errors.Is(err, settings.ErrProfileNotFound) {
			return nil, err
		}
		// First write creates the row.
		p = &settings.CompanyProfile{}
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}

	if req.LogoFile != nil && req.LogoHeader != nil {
		logoURL, err := s.fileService.UploadCompanyLogo(ctx, req.LogoFile, req.LogoHeader.Filename)
		if err != nil {
			return nil, fmt.Errorf("failed to upload company logo: %w", err)
		}
		p.LogoURL = &logoURL
	}

	if err := s.settingsRepo.UpsertProfile(ctx, p); err != nil {
		return nil, err
	}

	return toProfileResponse(p), nil
}

// GetRule implements settings.SettingsService.
func (s *SettingsServiceImpl) GetRule(ctx context.Context) (*settings.RuleResponse, error) {
	r, err := s.settingsRepo.GetRule(ctx)
	if err != nil {
		return nil, err
	}
	return toRuleResponse(r), nil
}

// UpdateRule implements settings.SettingsService.
func (s *SettingsServiceImpl) UpdateRule(ctx context.Context, req *settings.UpdateRuleRequest) (*settings.RuleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r, err := s.settingsRepo.GetRule(ctx)
	if err != nil {
		return nil, err
	}

	if req.GraceEnabled != nil {
		r.GraceEnabled = *req.GraceEnabled
	}
	if req.GraceMinutes != nil {
		r.GraceMinutes = *req.GraceMinutes
	}
	if req.Rounding != nil {
		r.Rounding = settings.RoundingPolicy(*req.Rounding)
	}
	if req.HalfDayHours != nil {
		r.HalfDayHours = *req.HalfDayHours
	}

	if err := s.settingsRepo.UpsertRule(ctx, r); err != nil {
		return nil, err
	}

	return toRuleResponse(r), nil
}

// GetWorkWeek implements settings.SettingsService.
func (s *SettingsServiceImpl) GetWorkWeek(ctx context.Context) (*settings.WorkWeekResponse, error) {
	days, err := s.settingsRepo.GetWorkWeek(ctx)
	if err != nil {
		return nil, err
	}
	return toWorkWeekResponse(days), nil
}

// UpdateWorkWeek implements settings.SettingsService.
func (s *SettingsServiceImpl) UpdateWorkWeek(ctx context.Context, req *settings.UpdateWorkWeekRequest) (*settings.WorkWeekResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	days := make([]settings.WorkWeekDay, 0, len(req.Days))
	for _, d := range req.Days {
		days = append(days, settings.WorkWeekDay{
			Weekday:   time.Weekday(d.Weekday),
			IsWorking: d.IsWorking,
		})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Weekday < days[j].Weekday })

	if err := s.settingsRepo.SetWorkWeek(ctx, days); err != nil {
		return nil, err
	}

	return toWorkWeekResponse(days), nil
}

func toProfileResponse(p *settings.CompanyProfile) *settings.ProfileResponse {
	return &settings.ProfileResponse{
		ID:      p.ID,
		Name:    p.Name,
		Address: p.Address,
		Email:   p.Email,
		Phone:   p.Phone,
		LogoURL: p.LogoURL,
	}
}

func toRuleResponse(r *settings.AttendanceRule) *settings.RuleResponse {
	return &settings.RuleResponse{
		ID:           r.ID,
		GraceEnabled: r.GraceEnabled,
		GraceMinutes: r.GraceMinutes,
		Rounding:     string(r.Rounding),
		HalfDayHours: r.HalfDayHours,
	}
}

func toWorkWeekResponse(days []settings.WorkWeekDay) *settings.WorkWeekResponse {
	resp := make([]settings.WorkWeekDayResponse, 0, len(days))
	for _, d := range days {
		resp = append(resp, settings.WorkWeekDayResponse{
			Weekday:   int(d.Weekday),
			Name:      d.Weekday.String(),
			IsWorking: d.IsWorking,
		})
	}
	return &settings.WorkWeekResponse{Days: resp}
}
