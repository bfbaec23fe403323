package holiday

import (
	"github.com/hexahash/attendance-portal-go/internal/pkg/validator"
)

// HolidayResponse represents the response structure for a holiday.
type HolidayResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	HolidayDate string `json:"holiday_date"`
	IsRecurring bool   `json:"is_recurring"`
}

// CreateHolidayRequest represents the request structure for creating a holiday.
type CreateHolidayRequest struct {
	Name        string `json:"name"`
	HolidayDate string `json:"holiday_date"` // YYYY-MM-DD
	IsRecurring bool   `json:"is_recurring"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if _, ok := validator.IsValidDate(r.HolidayDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "holiday_date",
			Message: "holiday_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateHolidayRequest represents the request structure for updating a holiday.
type UpdateHolidayRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	HolidayDate *string `json:"holiday_date,omitempty"`
	IsRecurring *bool   `json:"is_recurring,omitempty"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.HolidayDate != nil {
		if _, ok := validator.IsValidDate(*r.HolidayDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "holiday_date",
				Message: "holiday_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
