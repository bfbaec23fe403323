package settings

import "time"

type RoundingPolicy string

const (
	RoundingNone      RoundingPolicy = "none"
	RoundingNearest15 RoundingPolicy = "nearest_15"
	RoundingNearest30 RoundingPolicy = "nearest_30"
)

// CompanyProfile is the single-row company identity record.
type CompanyProfile struct {
	ID        string
	Name      string
	Address   string
	Email     string
	Phone     string
	LogoURL   *string
	UpdatedAt time.Time
}

// AttendanceRule tunes how the resolver treats punches. GraceEnabled
// switches the shift grace windows on; GraceMinutes is the fallback window
// for shifts that carry none. Rounding applies to worked minutes during the
// batch derivation pass.
type AttendanceRule struct {
	ID           string
	GraceEnabled bool
	GraceMinutes int
	Rounding     RoundingPolicy
	HalfDayHours int
	UpdatedAt    time.Time
}

// WorkWeek flags which weekdays count as working days. Exactly seven rows,
// keyed by time.Weekday ordinal.
type WorkWeekDay struct {
	Weekday   time.Weekday
	IsWorking bool
}

// DefaultAttendanceRule mirrors the out-of-the-box behavior: grace off,
// no rounding, half day under 4 hours.
func DefaultAttendanceRule() AttendanceRule {
	return AttendanceRule{
		GraceEnabled: false,
		GraceMinutes: 0,
		Rounding:     RoundingNone,
		HalfDayHours: 4,
	}
}

// DefaultWorkWeek is Monday through Friday.
func DefaultWorkWeek() []WorkWeekDay {
	days := make([]WorkWeekDay, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days[d] = WorkWeekDay{
			Weekday:   d,
			IsWorking: d != time.Sunday && d != time.Saturday,
		}
	}
	return days
}
