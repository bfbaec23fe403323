package shift

import (
	"github.com/hexahash/attendance-portal-go/internal/pkg/validator"
)

// ShiftResponse represents the response structure for a shift.
type ShiftResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	GraceIn   int    `json:"grace_in"`
	GraceOut  int    `json:"grace_out"`
	IsActive  bool   `json:"is_active"`
}

// CreateShiftRequest represents the request structure for creating a shift.
type CreateShiftRequest struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"` // "HH:MM" or "HH:MM:SS"
	EndTime   string `json:"end_time"`
	GraceIn   int    `json:"grace_in"`
	GraceOut  int    `json:"grace_out"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if _, ok := validator.IsValidTimeOfDay(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid HH:MM time",
		})
	}

	if _, ok := validator.IsValidTimeOfDay(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid HH:MM time",
		})
	}

	if r.GraceIn < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_in",
			Message: "grace_in must not be negative",
		})
	}

	if r.GraceOut < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_out",
			Message: "grace_out must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateShiftRequest represents the request structure for updating a shift.
type UpdateShiftRequest struct {
	ID        string  `json:"id"`
	Name      *string `json:"name,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	GraceIn   *int    `json:"grace_in,omitempty"`
	GraceOut  *int    `json:"grace_out,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.StartTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be a valid HH:MM time",
			})
		}
	}

	if r.EndTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be a valid HH:MM time",
			})
		}
	}

	if r.GraceIn != nil && *r.GraceIn < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_in",
			Message: "grace_in must not be negative",
		})
	}

	if r.GraceOut != nil && *r.GraceOut < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_out",
			Message: "grace_out must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
