package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrCodeExists       = errors.New("employee code already exists")
	ErrEmailExists      = errors.New("employee email already exists")
	ErrEmployeeInactive = errors.New("employee is inactive")
)
