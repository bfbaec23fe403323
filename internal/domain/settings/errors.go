package settings

import "errors"

var (
	ErrProfileNotFound = errors.New("company profile not found")
	ErrRuleNotFound    = errors.New("attendance rule not found")
)
