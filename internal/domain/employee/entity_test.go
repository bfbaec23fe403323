package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFullName(t *testing.T) {
	e := Employee{FirstName: "Asha", LastName: "Nair"}
	assert.Equal(t, "Asha Nair", e.FullName())

	single := Employee{FirstName: "Prince"}
	assert.Equal(t, "Prince", single.FullName())
}

func TestActiveOn(t *testing.T) {
	joined := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	left := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	e := Employee{JoinDate: joined, LeaveDate: &left}

	assert.False(t, e.ActiveOn(time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC)))
	assert.True(t, e.ActiveOn(joined))
	assert.True(t, e.ActiveOn(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, e.ActiveOn(left))
	assert.False(t, e.ActiveOn(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)))
}

func TestActiveOnNoLeaveDate(t *testing.T) {
	e := Employee{JoinDate: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)}
	assert.True(t, e.ActiveOn(time.Date(2030, time.December, 31, 0, 0, 0, 0, time.UTC)))
}
