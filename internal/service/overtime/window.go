package overtime

import (
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
)

// anchorDay returns the calendar day windows are anchored to. The work date
// wins; the clock-in day is used when the work date cannot be parsed.
func anchorDay(summary overtime.DailyWorkSummary) (int, time.Month, int) {
	if year, month, day, err := overtime.ParseWorkDate(summary.WorkDate); err == nil {
		return year, month, day
	}
	return summary.ClockInAt.Date()
}

// windowOn places w on the given day in loc.
func windowOn(w overtime.Window, year int, month time.Month, day int, loc *time.Location) (time.Time, time.Time) {
	start := w.Start.On(year, month, day, 0, loc)
	endOffset := 0
	if w.Spans() {
		endOffset = 1
	}
	return start, w.End.On(year, month, day, endOffset, loc)
}

// overlap returns how much of [from, to) lies inside [winStart, winEnd).
func overlap(from, to, winStart, winEnd time.Time) time.Duration {
	start := from
	if winStart.After(start) {
		start = winStart
	}
	end := to
	if winEnd.Before(end) {
		end = winEnd
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}

// wholeMinutes truncates d to whole minutes.
func wholeMinutes(d time.Duration) int {
	return int(d / time.Minute)
}

func (c *Calculator) breakOverlap(summary overtime.DailyWorkSummary) time.Duration {
	year, month, day := anchorDay(summary)
	start, end := windowOn(c.rules.Break, year, month, day, summary.ClockInAt.Location())
	return overlap(*summary.ClockInAt, *summary.ClockOutAt, start, end)
}

// lateNightMinutes is the floored overlap with the late-night window
// that opens on the work date.
func (c *Calculator) lateNightMinutes(summary overtime.DailyWorkSummary) int {
	year, month, day := anchorDay(summary)
	start, end := windowOn(c.rules.LateNight, year, month, day, summary.ClockInAt.Location())
	return wholeMinutes(overlap(*summary.ClockInAt, *summary.ClockOutAt, start, end))
}
