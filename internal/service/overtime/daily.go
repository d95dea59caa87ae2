package overtime

import (
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
)

// CalcDailyOvertime returns the day's overtime in whole minutes. Zero is a
// real result: uncountable days, days without a clock pair and normal days
// whose lateness cancels their overtime all yield 0. Holiday work is not
// offset by lateness.
//
// Clock times are expected to be rounded already; no rounding happens here.
// Inverted clock pairs are rejected by CalcMonthlyOvertime, not here.
func (c *Calculator) CalcDailyOvertime(summary overtime.DailyWorkSummary) int {
	if !summary.IsCountable() {
		return 0
	}
	if !summary.HasClockPair() {
		return 0
	}

	if summary.WorkType == overtime.WorkTypeHoliday {
		worked := summary.ClockOutAt.Sub(*summary.ClockInAt) - c.breakOverlap(summary)
		return max(0, wholeMinutes(worked))
	}

	// Lateness offsets overtime at its recorded, unrounded granularity.
	minutes := c.candidateAfterStandardEnd(summary) - summary.LateMinutes

	return max(0, minutes)
}

// candidateAfterStandardEnd counts worked minutes from the standard end
// time (inclusive) on the work date.
func (c *Calculator) candidateAfterStandardEnd(summary overtime.DailyWorkSummary) int {
	clockIn, clockOut := *summary.ClockInAt, *summary.ClockOutAt

	year, month, day := anchorDay(summary)
	standardEnd := c.rules.StandardEnd.On(year, month, day, 0, clockIn.Location())

	switch {
	case !clockIn.Before(standardEnd):
		return wholeMinutes(clockOut.Sub(clockIn))
	case !clockOut.After(standardEnd):
		return 0
	default:
		return wholeMinutes(clockOut.Sub(standardEnd))
	}
}
