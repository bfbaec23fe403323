package auth

import (
	"github.com/hexahash/attendance-portal-go/internal/pkg/validator"
)

// LoginRequest represents the request structure for password login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`

	// Set by the handler from the connection, not the body.
	IPAddress *string `json:"-"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RegisterRequest represents the request structure for creating a user
// account, optionally linked to an employee.
type RegisterRequest struct {
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id,omitempty"`
	Mobile     *string `json:"mobile,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if !validator.IsInSlice(r.Role, []string{"admin", "manager", "employee"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of admin, manager, employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ChangePasswordRequest represents the request structure for changing the
// caller's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "current_password",
			Message: "current_password is required",
		})
	}

	if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LoginResponse carries the issued token pair and the authenticated user's
// profile.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`

	// The refresh token travels in an HttpOnly cookie, never the body.
	RefreshToken          string `json:"-"`
	RefreshTokenExpiresAt int64  `json:"-"`
}

// UserResponse represents the authenticated user's public profile.
type UserResponse struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id,omitempty"`
	Mobile     *string `json:"mobile,omitempty"`
}

// RefreshResponse carries the re-issued token pair.
type RefreshResponse struct {
	AccessToken           string `json:"access_token"`
	RefreshToken          string `json:"-"`
	RefreshTokenExpiresAt int64  `json:"-"`
}
