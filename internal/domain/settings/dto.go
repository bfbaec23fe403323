package settings

import (
	"mime/multipart"

	"github.com/hexahash/attendance-portal-go/internal/pkg/validator"
)

// ProfileResponse represents the response structure for the company profile.
type ProfileResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	LogoURL *string `json:"logo_url,omitempty"`
}

// UpdateProfileRequest represents the request structure for updating the company profile.
type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`

	LogoFile   multipart.File        `json:"-"`
	LogoHeader *multipart.FileHeader `json:"-"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RuleResponse represents the response structure for the attendance rule.
type RuleResponse struct {
	ID           string `json:"id"`
	GraceEnabled bool   `json:"grace_enabled"`
	GraceMinutes int    `json:"grace_minutes"`
	Rounding     string `json:"rounding"`
	HalfDayHours int    `json:"half_day_hours"`
}

// UpdateRuleRequest represents the request structure for updating the attendance rule.
type UpdateRuleRequest struct {
	GraceEnabled *bool   `json:"grace_enabled,omitempty"`
	GraceMinutes *int    `json:"grace_minutes,omitempty"`
	Rounding     *string `json:"rounding,omitempty"`
	HalfDayHours *int    `json:"half_day_hours,omitempty"`
}

func (r *UpdateRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.GraceMinutes != nil && *r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must not be negative",
		})
	}

	if r.Rounding != nil && !validator.IsInSlice(*r.Rounding, []string{
		string(RoundingNone), string(RoundingNearest15), string(RoundingNearest30),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "rounding",
			Message: "rounding must be one of none, nearest_15, nearest_30",
		})
	}

	if r.HalfDayHours != nil && *r.HalfDayHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "half_day_hours",
			Message: "half_day_hours must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WorkWeekResponse represents the seven weekday flags.
type WorkWeekResponse struct {
	Days []WorkWeekDayResponse `json:"days"`
}

type WorkWeekDayResponse struct {
	Weekday   int    `json:"weekday"`
	Name      string `json:"name"`
	IsWorking bool   `json:"is_working"`
}

// UpdateWorkWeekRequest represents the request structure for updating the work week.
type UpdateWorkWeekRequest struct {
	Days []struct {
		Weekday   int  `json:"weekday"`
		IsWorking bool `json:"is_working"`
	} `json:"days"`
}

func (r *UpdateWorkWeekRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Days) != 7 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must contain exactly 7 entries",
		})
	}

	seen := make(map[int]bool)
	for _, d := range r.Days {
		if d.Weekday < 0 || d.Weekday > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: "weekday must be between 0 (Sunday) and 6 (Saturday)",
			})
			break
		}
		if seen[d.Weekday] {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: "weekday entries must be unique",
			})
			break
		}
		seen[d.Weekday] = true
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
