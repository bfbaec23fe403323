package attendance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hexahash/attendance-portal-go/internal/domain/attendance"
	"github.com/hexahash/attendance-portal-go/internal/domain/master/shift"
	"github.com/hexahash/attendance-portal-go/internal/domain/settings"
)

var minutesPerHour = decimal.NewFromInt(60)

// resolveDay folds a day's punches into in/out times using the canonical
// rule: the first chronological IN wins, the last chronological OUT wins.
// Punches must already be sorted by punch time.
func resolveDay(punches []attendance.PunchEvent) (inTime, outTime *time.Time) {
	for i := range punches {
		t := punches[i].PunchTime
		switch punches[i].Direction {
		case attendance.DirectionIn:
			if inTime == nil {
				inTime = &t
			}
		case attendance.DirectionOut:
			outTime = &t
		}
	}
	return inTime, outTime
}

// graceWindow picks the grace minutes for one shift boundary. The shift's
// own window wins; the company fallback covers shifts configured without
// one. Zero when grace handling is disabled.
func graceWindow(rule settings.AttendanceRule, shiftGrace int) int {
	if !rule.GraceEnabled {
		return 0
	}
	if shiftGrace > 0 {
		return shiftGrace
	}
	return rule.GraceMinutes
}

// buildSummary computes the full daily summary for one employee-day from
// its punches. The shift may be nil, in which case late-by and early-out
// stay zero.
func buildSummary(employeeID string, date time.Time, punches []attendance.PunchEvent, sh *shift.Shift, rule settings.AttendanceRule) attendance.DailySummary {
	summary := attendance.DailySummary{
		EmployeeID: employeeID,
		Date:       time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()),
		Status:     attendance.StatusAbsent,
	}

	inTime, outTime := resolveDay(punches)
	summary.InTime = inTime
	summary.OutTime = outTime

	if sh != nil {
		if inTime != nil {
			lateBy := int(inTime.Sub(sh.StartOn(date)).Minutes()) - graceWindow(rule, sh.GraceIn)
			if lateBy > 0 {
				summary.LateBy = lateBy
			}
		}
		if outTime != nil {
			earlyOut := int(sh.EndOn(date).Sub(*outTime).Minutes()) - graceWindow(rule, sh.GraceOut)
			if earlyOut > 0 {
				summary.EarlyOut = earlyOut
			}
		}
	}

	if inTime != nil && outTime != nil && outTime.After(*inTime) {
		worked := workedHours(*inTime, *outTime, rule.Rounding)
		summary.WorkedHours = &worked
	}

	if inTime != nil {
		summary.Status = attendance.StatusPresent
		halfDay := decimal.NewFromInt(int64(rule.HalfDayHours))
		if summary.WorkedHours != nil && summary.WorkedHours.LessThan(halfDay) {
			summary.Status = attendance.StatusHalfDay
		}
	}

	return summary
}

// workedHours converts the in/out span to hours rounded half-up to two
// decimal places, after applying the configured minute rounding policy.
func workedHours(in, out time.Time, policy settings.RoundingPolicy) decimal.Decimal {
	minutes := decimal.NewFromFloat(out.Sub(in).Minutes())

	switch policy {
	case settings.RoundingNearest15:
		minutes = roundToStep(minutes, 15)
	case settings.RoundingNearest30:
		minutes = roundToStep(minutes, 30)
	}

	return minutes.Div(minutesPerHour).Round(2)
}

func roundToStep(minutes decimal.Decimal, step int64) decimal.Decimal {
	s := decimal.NewFromInt(step)
	return minutes.Div(s).Round(0).Mul(s)
}
