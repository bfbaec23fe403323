package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOccursExactDate(t *testing.T) {
	h := Holiday{
		Name:        "Founders Day",
		HolidayDate: time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, h.Occurs(time.Date(2024, time.March, 12, 9, 30, 0, 0, time.UTC)))
	assert.False(t, h.Occurs(time.Date(2024, time.March, 13, 0, 0, 0, 0, time.UTC)))
	assert.False(t, h.Occurs(time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)))
}

func TestOccursRecurringMatchesEveryYear(t *testing.T) {
	h := Holiday{
		Name:        "New Year",
		HolidayDate: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		IsRecurring: true,
	}

	assert.True(t, h.Occurs(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, h.Occurs(time.Date(2031, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, h.Occurs(time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)))
}
