package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameExists         = errors.New("username already taken")
	ErrEmailExists            = errors.New("email already registered")
	ErrUserInactive           = errors.New("user account is inactive")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
