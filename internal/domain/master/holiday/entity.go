package holiday

import "time"

// Holiday marks a non-working calendar date. Summaries derived for a
// holiday are never marked absent regardless of punches.
type Holiday struct {
	ID          string
	Name        string
	HolidayDate time.Time
	IsRecurring bool
}

// Occurs reports whether the holiday falls on the given date. Recurring
// holidays match on month and day every year.
func (h Holiday) Occurs(date time.Time) bool {
	if h.IsRecurring {
		return h.HolidayDate.Month() == date.Month() && h.HolidayDate.Day() == date.Day()
	}
	return h.HolidayDate.Year() == date.Year() &&
		h.HolidayDate.Month() == date.Month() &&
		h.HolidayDate.Day() == date.Day()
}
