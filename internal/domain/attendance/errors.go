package attendance

import "errors"

var (
	ErrPunchNotFound         = errors.New("punch event not found")
	ErrSummaryNotFound       = errors.New("daily summary not found")
	ErrPunchAlreadyProcessed = errors.New("punch event has already been approved or rejected")
	ErrInvalidDirection      = errors.New("punch direction must be IN or OUT")
)
