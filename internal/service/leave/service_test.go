package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hexahash/attendance-portal-go/internal/domain/master/holiday"
	"github.com/hexahash/attendance-portal-go/internal/domain/settings"
)

func weekdayMap(days []settings.WorkWeekDay) map[time.Weekday]bool {
	m := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		m[d.Weekday] = d.IsWorking
	}
	return m
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkingDaysSkipsWeekend(t *testing.T) {
	working := weekdayMap(settings.DefaultWorkWeek())

	// Friday March 8 through Monday March 11, 2024: the weekend in the
	// middle does not count.
	got := workingDays(date(2024, time.March, 8), date(2024, time.March, 11), working, nil)
	assert.Equal(t, 2, got)
}

func TestWorkingDaysSkipsHoliday(t *testing.T) {
	working := weekdayMap(settings.DefaultWorkWeek())
	holidays := []holiday.Holiday{
		{Name: "Founders Day", HolidayDate: date(2024, time.March, 12)},
	}

	got := workingDays(date(2024, time.March, 11), date(2024, time.March, 15), working, holidays)
	assert.Equal(t, 4, got)
}

func TestWorkingDaysRecurringHoliday(t *testing.T) {
	working := weekdayMap(settings.DefaultWorkWeek())
	holidays := []holiday.Holiday{
		{Name: "New Year", HolidayDate: date(2020, time.January, 1), IsRecurring: true},
	}

	// Wednesday January 1, 2025 matches the recurring month and day.
	got := workingDays(date(2024, time.December, 30), date(2025, time.January, 3), working, holidays)
	assert.Equal(t, 4, got)
}

func TestWorkingDaysSingleDay(t *testing.T) {
	working := weekdayMap(settings.DefaultWorkWeek())

	assert.Equal(t, 1, workingDays(date(2024, time.March, 11), date(2024, time.March, 11), working, nil))
	assert.Equal(t, 0, workingDays(date(2024, time.March, 10), date(2024, time.March, 10), working, nil))
}

func TestWorkingDaysAllWeekendRange(t *testing.T) {
	working := weekdayMap(settings.DefaultWorkWeek())

	got := workingDays(date(2024, time.March, 9), date(2024, time.March, 10), working, nil)
	assert.Equal(t, 0, got)
}
