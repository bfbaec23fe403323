package device

import (
	"github.com/hexahash/attendance-portal-go/internal/pkg/validator"
)

// DeviceResponse represents the response structure for a device.
type DeviceResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	SerialNo   *string `json:"serial_no,omitempty"`
	IsActive   bool    `json:"is_active"`
	LastSeenAt *string `json:"last_seen_at,omitempty"`
}

// CreateDeviceRequest represents the request structure for registering a device.
type CreateDeviceRequest struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	SerialNo *string `json:"serial_no,omitempty"`
}

func (r *CreateDeviceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateDeviceRequest represents the request structure for updating a device.
type UpdateDeviceRequest struct {
	ID       string  `json:"id"`
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	SerialNo *string `json:"serial_no,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateDeviceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
