package shift

import "time"

// Shift defines the scheduled working window an employee is measured
// against. StartTime and EndTime carry only the time-of-day portion; the
// date components are ignored. GraceIn/GraceOut are leeway minutes around
// the boundaries, consumed only when the company attendance rule enables
// grace handling.
type Shift struct {
	ID        string
	Name      string
	StartTime time.Time
	EndTime   time.Time
	GraceIn   int
	GraceOut  int
	IsActive  bool
}

// StartOn anchors the shift start time onto the given calendar date in the
// date's location.
func (s Shift) StartOn(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		s.StartTime.Hour(), s.StartTime.Minute(), s.StartTime.Second(), 0, date.Location())
}

// EndOn anchors the shift end time onto the given calendar date in the
// date's location.
func (s Shift) EndOn(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		s.EndTime.Hour(), s.EndTime.Minute(), s.EndTime.Second(), 0, date.Location())
}
