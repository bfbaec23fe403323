package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexahash/attendance-portal-go/internal/domain/attendance"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/shift"
	"github.com/hexahash/attendance-portal-go/internal/domain/settings"
)

func dayShift(graceIn, graceOut int) *shift.Shift {
	return &shift.Shift{
		ID:        "shift-1",
		Name:      "Day",
		StartTime: time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 17, 0, 0, 0, time.UTC),
		GraceIn:   graceIn,
		GraceOut:  graceOut,
		IsActive:  true,
	}
}

func punchAt(direction attendance.PunchDirection, hour, min int) attendance.PunchEvent {
	return attendance.PunchEvent{
		EmployeeID: "emp-1",
		Direction:  direction,
		PunchTime:  time.Date(2024, 3, 11, hour, min, 0, 0, time.UTC),
		Status:     attendance.PunchApproved,
	}
}

var testDate = time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

func TestBuildSummaryLateAndEarlyOut(t *testing.T) {
	// In 09:20, out 16:45 against a 09:00-17:00 shift.
	punches := []attendance.PunchEvent{
		punchAt(attendance.DirectionIn, 9, 20),
		punchAt(attendance.DirectionOut, 16, 45),
	}

	summary := buildSummary("emp-1", testDate, punches, dayShift(0, 0), settings.DefaultAttendanceRule())

	assert.Equal(t, 20, summary.LateBy)
	assert.Equal(t, 15, summary.EarlyOut)
	require.NotNil(t, summary.WorkedHours)
	assert.Equal(t, "7.42", summary.WorkedHours.StringFixed(2))
	assert.Equal(t, attendance.StatusPresent, summary.Status)
}

func TestBuildSummaryFirstInLastOutWins(t *testing.T) {
	// Duplicate INs keep the earliest; duplicate OUTs keep the latest.
	punches := []attendance.PunchEvent{
		punchAt(attendance.DirectionIn, 9, 0),
		punchAt(attendance.DirectionIn, 9, 30),
		punchAt(attendance.DirectionOut, 12, 0),
		punchAt(attendance.DirectionOut, 17, 0),
	}

	summary := buildSummary("emp-1", testDate, punches, dayShift(0, 0), settings.DefaultAttendanceRule())

	require.NotNil(t, summary.InTime)
	require.NotNil(t, summary.OutTime)
	assert.Equal(t, 9, summary.InTime.Hour())
	assert.Equal(t, 0, summary.InTime.Minute())
	assert.Equal(t, 17, summary.OutTime.Hour())
	assert.Equal(t, 0, summary.LateBy)
	assert.Equal(t, 0, summary.EarlyOut)
	assert.Equal(t, "8.00", summary.WorkedHours.StringFixed(2))
}

func TestBuildSummaryNoPunchesIsAbsent(t *testing.T) {
	summary := buildSummary("emp-1", testDate, nil, dayShift(0, 0), settings.DefaultAttendanceRule())

	assert.Equal(t, attendance.StatusAbsent, summary.Status)
	assert.Nil(t, summary.InTime)
	assert.Nil(t, summary.OutTime)
	assert.Nil(t, summary.WorkedHours)
	assert.Equal(t, 0, summary.LateBy)
	assert.Equal(t, 0, summary.EarlyOut)
}

func TestBuildSummaryOutOnlyIsAbsent(t *testing.T) {
	// An OUT with no IN never counts as presence.
	punches := []attendance.PunchEvent{
		punchAt(attendance.DirectionOut, 17, 0),
	}

	summary := buildSummary("emp-1", testDate, punches, dayShift(0, 0), settings.DefaultAttendanceRule())

	assert.Equal(t, attendance.StatusAbsent, summary.Status)
	assert.Nil(t, summary.WorkedHours)
}

func TestBuildSummaryHalfDay(t *testing.T) {
	punches := []attendance.PunchEvent{
		punchAt(attendance.DirectionIn, 9, 0),
		punchAt(attendance.DirectionOut, 12, 0),
	}

	summary := buildSummary("emp-1", testDate, punches, dayShift(0, 0), settings.DefaultAttendanceRule())

	assert.Equal(t, attendance.StatusHalfDay, summary.Status)
	assert.Equal(t, "3.00", summary.WorkedHours.StringFixed(2))
}

func TestBuildSummaryInOnlyIsPresentWithoutHours(t *testing.T) {
	punches := []attendance.PunchEvent{
		punchAt(attendance.DirectionIn, 9, 0),
	}

	summary := buildSummary("emp-1", testDate, punches, dayShift(0, 0), settings.DefaultAttendanceRule())

	assert.Equal(t, attendance.StatusPresent, summary.Status)
	assert.Nil(t, summary.WorkedHours)
	assert.Equal(t, 0, summary.EarlyOut)
}

func TestBuildSummaryGraceDisabledIgnoresShiftGrace(t *testing.T) {
	punches := []attendance.PunchEvent{
		punchAt(attendance.DirectionIn, 9, 10),
		punchAt(attendance.DirectionOut, 17, 0),
	}

	// Shift carries grace windows, but the company rule leaves grace off.
	summary := buildSummary("emp-1", testDate, punches, dayShift(15, 15), settings.DefaultAttendanceRule())

	assert.Equal(t, 10, summary.LateBy)
}

func TestBuildSummaryGraceEnabledUsesShiftGrace(t *testing.T) {
	rule := settings.DefaultAttendanceRule()
	rule.GraceEnabled = true

	punches := []attendance.PunchEvent{
		punchAt(attendance.DirectionIn, 9, 10),
		punchAt(attendance.DirectionOut, 16, 50),
	}

	summary := buildSummary("emp-1", testDate, punches, dayShift(15, 15), rule)

	assert.Equal(t, 0, summary.LateBy)
	assert.Equal(t, 0, summary.EarlyOut)
}

func TestBuildSummaryGraceFallbackMinutes(t *testing.T) {
	rule := settings.DefaultAttendanceRule()
	rule.GraceEnabled = true
	rule.GraceMinutes = 5

	punches := []attendance.PunchEvent{
		punchAt(attendance.DirectionIn, 9, 10),
		punchAt(attendance.DirectionOut, 17, 0),
	}

	// Shift has no grace window of its own, so the company fallback applies.
	summary := buildSummary("emp-1", testDate, punches, dayShift(0, 0), rule)

	assert.Equal(t, 5, summary.LateBy)
}

func TestBuildSummaryNoShiftNoDeltas(t *testing.T) {
	punches := []attendance.PunchEvent{
		punchAt(attendance.DirectionIn, 10, 0),
		punchAt(attendance.DirectionOut, 15, 0),
	}

	summary := buildSummary("emp-1", testDate, punches, nil, settings.DefaultAttendanceRule())

	assert.Equal(t, 0, summary.LateBy)
	assert.Equal(t, 0, summary.EarlyOut)
	assert.Equal(t, "5.00", summary.WorkedHours.StringFixed(2))
}

func TestBuildSummaryEarlyArrivalNotNegative(t *testing.T) {
	punches := []attendance.PunchEvent{
		punchAt(attendance.DirectionIn, 8, 30),
		punchAt(attendance.DirectionOut, 17, 30),
	}

	summary := buildSummary("emp-1", testDate, punches, dayShift(0, 0), settings.DefaultAttendanceRule())

	assert.Equal(t, 0, summary.LateBy)
	assert.Equal(t, 0, summary.EarlyOut)
}

func TestWorkedHoursRoundingPolicies(t *testing.T) {
	in := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	out := time.Date(2024, 3, 11, 16, 52, 0, 0, time.UTC) // 472 minutes

	tests := []struct {
		policy   settings.RoundingPolicy
		expected string
	}{
		{settings.RoundingNone, "7.87"},
		{settings.RoundingNearest15, "7.75"}, // 472 -> 465
		{settings.RoundingNearest30, "8.00"}, // 472 -> 480
	}

	for _, tt := range tests {
		got := workedHours(in, out, tt.policy)
		assert.Equal(t, tt.expected, got.StringFixed(2), "policy %s", tt.policy)
	}
}
