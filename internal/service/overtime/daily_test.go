package overtime

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
	"github.com/stretchr/testify/assert"
)

// day builds an approved, completed summary. Empty clock strings leave the
// clock time absent.
func day(t *testing.T, workDate, clockIn, clockOut string, workType overtime.WorkType) overtime.DailyWorkSummary {
	t.Helper()
	s := overtime.DailyWorkSummary{
		EmployeeID:     "0195a3b2-7c4d-7e8f-9a0b-1c2d3e4f5a6b",
		WorkDate:       workDate,
		WorkType:       workType,
		ApprovalStatus: overtime.ApprovalStatusApproved,
		Status:         overtime.DayStatusCompleted,
	}
	if clockIn != "" {
		in := at(t, clockIn)
		s.ClockInAt = &in
	}
	if clockOut != "" {
		out := at(t, clockOut)
		s.ClockOutAt = &out
	}
	return s
}

func TestCalcDailyOvertime_NormalDay(t *testing.T) {
	tests := []struct {
		name        string
		clockIn     string
		clockOut    string
		lateMinutes int
		want        int
	}{
		{"leaves at standard end", "2026-02-02T09:00:00", "2026-02-02T18:00:00", 0, 0},
		{"leaves at 19:00", "2026-02-02T09:00:00", "2026-02-02T19:00:00", 0, 60},
		{"leaves at 20:30", "2026-02-02T09:00:00", "2026-02-02T20:30:00", 0, 150},
		{"leaves at 18:15", "2026-02-02T09:00:00", "2026-02-02T18:15:00", 0, 15},
		{"leaves early", "2026-02-02T09:00:00", "2026-02-02T17:30:00", 0, 0},
		{"hour late cancels hour of overtime", "2026-02-02T10:00:00", "2026-02-02T19:00:00", 60, 0},
		{"half hour late", "2026-02-02T09:30:00", "2026-02-02T19:00:00", 30, 30},
		{"lateness exceeds overtime", "2026-02-02T11:00:00", "2026-02-02T19:00:00", 120, 0},
		{"unrounded lateness", "2026-02-02T09:07:00", "2026-02-02T19:00:00", 7, 53},
		{"starts after standard end", "2026-02-02T19:00:00", "2026-02-02T21:30:00", 0, 150},
		{"starts exactly at standard end", "2026-02-02T18:00:00", "2026-02-02T19:00:00", 0, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := day(t, "2026-02-02", tt.clockIn, tt.clockOut, overtime.WorkTypeNormal)
			s.LateMinutes = tt.lateMinutes
			assert.Equal(t, tt.want, CalcDailyOvertime(s))
		})
	}
}

func TestCalcDailyOvertime_CrossesMidnight(t *testing.T) {
	s := day(t, "2026-01-31", "2026-01-31T23:00:00", "2026-02-01T01:00:00", overtime.WorkTypeNormal)
	assert.Equal(t, 120, CalcDailyOvertime(s))

	s = day(t, "2026-02-02", "2026-02-02T09:00:00", "2026-02-03T00:00:00", overtime.WorkTypeNormal)
	assert.Equal(t, 360, CalcDailyOvertime(s))
}

func TestCalcDailyOvertime_HolidayDay(t *testing.T) {
	tests := []struct {
		name     string
		clockIn  string
		clockOut string
		want     int
	}{
		{"full day minus break", "2026-02-08T09:00:00", "2026-02-08T17:00:00", 420},
		{"long day minus break", "2026-02-08T09:00:00", "2026-02-08T22:00:00", 720},
		{"morning only", "2026-02-08T08:00:00", "2026-02-08T12:00:00", 240},
		{"afternoon only", "2026-02-08T13:00:00", "2026-02-08T17:00:00", 240},
		{"partial break overlap", "2026-02-08T12:30:00", "2026-02-08T15:00:00", 120},
		{"inside break", "2026-02-08T12:15:00", "2026-02-08T12:45:00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := day(t, "2026-02-08", tt.clockIn, tt.clockOut, overtime.WorkTypeHoliday)
			assert.Equal(t, tt.want, CalcDailyOvertime(s))
		})
	}
}

func TestCalcDailyOvertime_HolidayIgnoresLateness(t *testing.T) {
	s := day(t, "2026-02-08", "2026-02-08T09:00:00", "2026-02-08T17:00:00", overtime.WorkTypeHoliday)
	s.LateMinutes = 30
	assert.Equal(t, 420, CalcDailyOvertime(s))

	s.LateMinutes = 600
	assert.Equal(t, 420, CalcDailyOvertime(s))
}

func TestCalcDailyOvertime_NotCountable(t *testing.T) {
	tests := []struct {
		name     string
		approval overtime.ApprovalStatus
		status   overtime.DayStatus
		want     int
	}{
		{"approved", overtime.ApprovalStatusApproved, overtime.DayStatusCompleted, 180},
		{"no request", overtime.ApprovalStatusNone, overtime.DayStatusCompleted, 180},
		{"pending request", overtime.ApprovalStatusPending, overtime.DayStatusCompleted, 0},
		{"rejected request", overtime.ApprovalStatusRejected, overtime.DayStatusCompleted, 0},
		{"missing clock out", overtime.ApprovalStatusApproved, overtime.DayStatusMissingClockOut, 0},
		{"pending day", overtime.ApprovalStatusApproved, overtime.DayStatusPending, 0},
		{"in progress", overtime.ApprovalStatusApproved, overtime.DayStatusInProgress, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := day(t, "2026-02-02", "2026-02-02T09:00:00", "2026-02-02T21:00:00", overtime.WorkTypeNormal)
			s.ApprovalStatus = tt.approval
			s.Status = tt.status
			assert.Equal(t, tt.want, CalcDailyOvertime(s))
		})
	}
}

func TestCalcDailyOvertime_MissingClockTimes(t *testing.T) {
	s := day(t, "2026-02-02", "2026-02-02T09:00:00", "", overtime.WorkTypeNormal)
	assert.Equal(t, 0, CalcDailyOvertime(s))

	s = day(t, "2026-02-02", "", "2026-02-02T21:00:00", overtime.WorkTypeNormal)
	assert.Equal(t, 0, CalcDailyOvertime(s))

	s = day(t, "2026-02-08", "", "", overtime.WorkTypeHoliday)
	assert.Equal(t, 0, CalcDailyOvertime(s))
}

func TestCalcDailyOvertime_MonotonicInClockOut(t *testing.T) {
	s := day(t, "2026-02-02", "2026-02-02T09:00:00", "2026-02-02T18:00:00", overtime.WorkTypeNormal)
	s.LateMinutes = 20

	prev := 0
	for out := at(t, "2026-02-02T18:00:00"); out.Before(at(t, "2026-02-03T03:00:00")); out = out.Add(15 * time.Minute) {
		clockOut := out
		s.ClockOutAt = &clockOut

		got := CalcDailyOvertime(s)
		assert.GreaterOrEqual(t, got, prev)
		assert.Equal(t, max(0, int(out.Sub(at(t, "2026-02-02T18:00:00"))/time.Minute)-20), got)
		prev = got
	}
}

func TestCalcDailyOvertime_CustomStandardEnd(t *testing.T) {
	rules := overtime.DefaultRules()
	rules.StandardEnd = overtime.ClockTime{Hour: 17, Minute: 30}
	calc, err := NewCalculator(rules)
	assert.NoError(t, err)

	s := day(t, "2026-02-02", "2026-02-02T08:30:00", "2026-02-02T19:00:00", overtime.WorkTypeNormal)
	assert.Equal(t, 90, calc.CalcDailyOvertime(s))
}
