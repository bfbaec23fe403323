package attendance

import (
	"mime/multipart"
	"strings"

	"github.com/hexahash/attendance-portal-go/internal/pkg/validator"
)

type RecordPunchRequest struct {
	EmployeeCode string                `json:"employee_code"`
	Direction    string                `json:"direction"`
	PunchTime    string                `json:"punch_time,omitempty"` // RFC3339; empty means "now" (filled by the handler)
	DeviceName   *string               `json:"device_name,omitempty"`
	GeoLat       *float64              `json:"geo_lat,omitempty"`
	GeoLong      *float64              `json:"geo_long,omitempty"`
	SelfieURL    *string               `json:"-"`
	File         multipart.File        `json:"-"`
	FileHeader   *multipart.FileHeader `json:"-"`
}

func (r *RecordPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	if r.Direction != string(DirectionIn) && r.Direction != string(DirectionOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "direction",
			Message: "direction must be IN or OUT",
		})
	}

	if !validator.IsEmpty(r.PunchTime) {
		if _, ok := validator.IsValidDateTime(r.PunchTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "punch_time",
				Message: "punch_time must be an ISO8601 timestamp",
			})
		}
	}

	if r.GeoLat != nil && (*r.GeoLat < -90 || *r.GeoLat > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "geo_lat",
			Message: "geo_lat must be between -90 and 90",
		})
	}

	if r.GeoLong != nil && (*r.GeoLong < -180 || *r.GeoLong > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "geo_long",
			Message: "geo_long must be between -180 and 180",
		})
	}

	if r.FileHeader != nil {
		filename := r.FileHeader.Filename
		idx := strings.LastIndex(filename, ".")
		ext := ""
		if idx >= 0 {
			ext = strings.ToLower(filename[idx:])
		}
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "invalid file type: only jpg, jpeg, png allowed",
			})
		} else if r.FileHeader.Size > 10<<20 { // 10MB
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "selfie size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeCode string   `json:"employee_code,omitempty"`
	EmployeeName string   `json:"employee_name,omitempty"`
	Direction    string   `json:"direction"`
	PunchTime    string   `json:"punch_time"`
	DeviceName   *string  `json:"device_name,omitempty"`
	GeoLat       *float64 `json:"geo_lat,omitempty"`
	GeoLong      *float64 `json:"geo_long,omitempty"`
	SelfieURL    *string  `json:"selfie_url,omitempty"`
	Status       string   `json:"status"`
}

type SummaryResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeCode string  `json:"employee_code,omitempty"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	InTime       *string `json:"in_time,omitempty"`
	OutTime      *string `json:"out_time,omitempty"`
	WorkedHours  *string `json:"worked_hours,omitempty"`
	LateBy       int     `json:"late_by"`
	EarlyOut     int     `json:"early_out"`
	Status       string  `json:"status"`
}

type PunchFilter struct {
	EmployeeID string
	DateFrom   string
	DateTo     string
	Status     string
	Page       int
	Limit      int
}

type SummaryFilter struct {
	EmployeeID string
	DateFrom   string
	DateTo     string
	Status     string
	Page       int
	Limit      int
}

type ListPunchResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Punches    []PunchResponse `json:"punches"`
}

type ListSummaryResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Summaries  []SummaryResponse `json:"summaries"`
}

// DeriveSummariesRequest asks for a batch re-derivation of daily summaries
// over an explicit, caller-supplied date range.
type DeriveSummariesRequest struct {
	DateFrom    string   `json:"date_from"`
	DateTo      string   `json:"date_to"`
	EmployeeIDs []string `json:"employee_ids,omitempty"` // empty means all active employees
}

func (r *DeriveSummariesRequest) Validate() error {
	var errs validator.ValidationErrors

	from, okFrom := validator.IsValidDate(r.DateFrom)
	if !okFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "date_from",
			Message: "date_from must be a YYYY-MM-DD date",
		})
	}
	to, okTo := validator.IsValidDate(r.DateTo)
	if !okTo {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must be a YYYY-MM-DD date",
		})
	}
	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must not be before date_from",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type StatsResponse struct {
	EmployeeID       string `json:"employee_id"`
	EmployeeCode     string `json:"employee_code"`
	EmployeeName     string `json:"employee_name"`
	PresentDays      int    `json:"present_days"`
	AbsentDays       int    `json:"absent_days"`
	HalfDays         int    `json:"half_days"`
	LeaveDays        int    `json:"leave_days"`
	LateDays         int    `json:"late_days"`
	TotalLateMinutes int    `json:"total_late_minutes"`
	TotalHours       string `json:"total_hours"`
}
