package overtime

import (
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstant(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-02-02T09:07:00", time.Date(2026, 2, 2, 9, 7, 0, 0, time.UTC)},
		{"2026-02-02T09:07", time.Date(2026, 2, 2, 9, 7, 0, 0, time.UTC)},
		{"2026-02-02 09:07:30", time.Date(2026, 2, 2, 9, 7, 30, 0, time.UTC)},
		{"2026-02-02T09:07:00+07:00", time.Date(2026, 2, 2, 9, 7, 0, 0, time.FixedZone("", 7*3600))},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInstant("instant", tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, tt.want.Hour(), got.Hour())
		})
	}

	for _, bad := range []string{"", "   ", "2026-02-30T09:00:00", "09:00", "tomorrow"} {
		_, err := ParseInstant("instant", bad)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", bad)
	}
}

func TestParseClockTime(t *testing.T) {
	got, err := ParseClockTime("05:30")
	require.NoError(t, err)
	assert.Equal(t, ClockTime{Hour: 5, Minute: 30}, got)
	assert.Equal(t, "05:30", got.String())

	for _, bad := range []string{"5:30", "24:00", "12:60", "noon", "12-00"} {
		_, err := ParseClockTime(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestWindow_Spans(t *testing.T) {
	assert.True(t, DefaultRules().LateNight.Spans())
	assert.False(t, DefaultRules().Break.Spans())
}

func TestError_Kinds(t *testing.T) {
	inv := NewInvalidInput("minutes", -1, "minutes must be a non-negative integer")
	assert.True(t, errors.Is(inv, ErrInvalidInput))
	assert.False(t, errors.Is(inv, ErrValidation))
	assert.Equal(t, map[string]string{"minutes": "minutes must be a non-negative integer (got -1)"}, inv.Details())

	val := NewValidationError("year_month", "2026/02", "year_month must be in YYYY-MM format")
	assert.True(t, errors.Is(val, ErrValidation))
	assert.Contains(t, val.Error(), "year_month")
}

func TestDailySummaryRequest_ValidateDefaults(t *testing.T) {
	req := DailySummaryRequest{WorkDate: "2026-02-02"}
	require.NoError(t, req.Validate())

	assert.Equal(t, string(WorkTypeNormal), req.WorkType)
	assert.Equal(t, string(ApprovalStatusNone), req.ApprovalStatus)
	assert.Equal(t, string(DayStatusCompleted), req.Status)

	summary, err := req.ToEntity()
	require.NoError(t, err)
	assert.Nil(t, summary.ClockInAt)
	assert.True(t, summary.IsCountable())
}

func TestMonthlyOvertimeRequest_ValidatePrefixesFields(t *testing.T) {
	req := MonthlyOvertimeRequest{
		YearMonth: "2026-02",
		DailySummaries: []DailySummaryRequest{
			{WorkDate: "2026-02-02"},
			{WorkDate: "2026-02-03", LateMinutes: -5, Status: "lost"},
		},
		TimeStamps: []TimeStampRequest{{StampType: "lunch", StampedAt: "2026-02-02T12:00:00"}},
	}

	err := req.Validate()
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	fields := verrs.ToMap()
	assert.Contains(t, fields, "daily_summaries[1].late_minutes")
	assert.Contains(t, fields, "daily_summaries[1].status")
	assert.Contains(t, fields, "time_stamps[0].stamp_type")
	assert.NotContains(t, fields, "daily_summaries[0].work_date")
}

func TestMonthlyOvertimeRequest_ToEntityKeepsMissingSummariesNil(t *testing.T) {
	input, err := MonthlyOvertimeRequest{YearMonth: "2026-02"}.ToEntity()
	require.NoError(t, err)
	assert.Nil(t, input.DailySummaries)

	input, err = MonthlyOvertimeRequest{YearMonth: "2026-02", DailySummaries: []DailySummaryRequest{}}.ToEntity()
	require.NoError(t, err)
	assert.NotNil(t, input.DailySummaries)
	assert.Empty(t, input.DailySummaries)
}

func TestEmployeeMonthlyRequest_Validate(t *testing.T) {
	wage := "1500.50"
	req := EmployeeMonthlyRequest{
		EmployeeID: "0195a3b2-7c4d-7e8f-9a0b-1c2d3e4f5a6b",
		YearMonth:  "2026-02",
		HourlyWage: &wage,
	}
	assert.NoError(t, req.Validate())

	bad := "lots"
	req = EmployeeMonthlyRequest{EmployeeID: "7", YearMonth: "Feb", HourlyWage: &bad}
	var verrs validator.ValidationErrors
	require.True(t, errors.As(req.Validate(), &verrs))
	assert.Len(t, verrs, 3)
}
