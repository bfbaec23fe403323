package leave

import "errors"

var (
	ErrLeaveTypeNotFound     = errors.New("leave type not found")
	ErrApplicationNotFound   = errors.New("leave application not found")
	ErrLeaveAlreadyProcessed = errors.New("leave application has already been processed")
	ErrLeaveOverlaps         = errors.New("leave application overlaps an existing application")
	ErrLeaveBalanceExceeded  = errors.New("leave application exceeds the yearly allowance")
)
