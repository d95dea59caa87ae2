package overtime

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/validator"
)

// CalcMonthlyOvertime validates input and aggregates its countable days.
// The stored OvertimeMinutes of each summary is trusted for the totals while
// late-night minutes are recomputed from the clock times. Holiday minutes
// count toward the prorated cap and are also reported on their own.
func (c *Calculator) CalcMonthlyOvertime(input overtime.MonthlyOvertimeInput) (overtime.MonthlyOvertimeResult, error) {
	if err := c.validateMonthly(input); err != nil {
		return overtime.MonthlyOvertimeResult{}, err
	}

	if c.rules.ConsistencyCheck {
		if err := c.requireConsistent(input); err != nil {
			return overtime.MonthlyOvertimeResult{}, err
		}
	}

	var total, holiday, lateNight int
	for i, summary := range input.DailySummaries {
		if !summary.IsCountable() {
			continue
		}

		if summary.OvertimeMinutes > math.MaxInt-total {
			return overtime.MonthlyOvertimeResult{}, overtime.NewValidationError(summaryField(i, "overtime_minutes"), summary.OvertimeMinutes,
				"overtime_minutes total exceeds the representable range")
		}
		total += summary.OvertimeMinutes
		if summary.WorkType == overtime.WorkTypeHoliday {
			holiday += summary.OvertimeMinutes
		}
		if summary.HasClockPair() {
			lateNight += c.lateNightMinutes(summary)
		}
	}

	limit := c.ProratedCap(input.ActualWorkingDays, input.WorkingDaysInMonth)
	regular := min(total, limit)
	excess := max(0, total-limit)

	result := overtime.MonthlyOvertimeResult{
		TotalOvertimeMinutes:   total,
		RegularOvertimeMinutes: regular,
		ExcessOvertimeMinutes:  excess,
		HolidayWorkMinutes:     holiday,
		LateNightMinutes:       lateNight,
	}

	formats := []struct {
		minutes int
		dst     *string
	}{
		{total, &result.TotalOvertime},
		{regular, &result.RegularOvertime},
		{excess, &result.ExcessOvertime},
		{holiday, &result.HolidayWork},
		{lateNight, &result.LateNight},
	}
	for _, f := range formats {
		formatted, err := FormatTime(f.minutes)
		if err != nil {
			return overtime.MonthlyOvertimeResult{}, err
		}
		*f.dst = formatted
	}

	return result, nil
}

// ProratedCap is floor(cap * actual / statutory). Callers guarantee
// 0 < actual <= statutory, so the quotient never exceeds the cap even when
// the product does not fit in an int.
func (c *Calculator) ProratedCap(actualWorkingDays, workingDaysInMonth int) int {
	hi, lo := bits.Mul64(uint64(c.rules.MonthlyCapMinutes), uint64(actualWorkingDays))
	quo, _ := bits.Div64(hi, lo, uint64(workingDaysInMonth))
	return int(quo)
}

// validateMonthly stops at the first violation.
func (c *Calculator) validateMonthly(input overtime.MonthlyOvertimeInput) error {
	if input.DailySummaries == nil {
		return overtime.NewValidationError("daily_summaries", nil, "daily_summaries is required")
	}
	if !validator.IsValidYearMonth(input.YearMonth) {
		return overtime.NewValidationError("year_month", input.YearMonth, "year_month must be in YYYY-MM format")
	}
	if input.ActualWorkingDays <= 0 {
		return overtime.NewValidationError("actual_working_days", input.ActualWorkingDays, "actual_working_days must be positive")
	}
	if input.ActualWorkingDays > input.WorkingDaysInMonth {
		return overtime.NewValidationError("actual_working_days", input.ActualWorkingDays,
			fmt.Sprintf("actual_working_days exceeds working_days_in_month (%d)", input.WorkingDaysInMonth))
	}

	for i, summary := range input.DailySummaries {
		if len(summary.WorkDate) < 7 || summary.WorkDate[:7] != input.YearMonth {
			return overtime.NewValidationError(summaryField(i, "work_date"), summary.WorkDate,
				fmt.Sprintf("work_date is outside year_month %s", input.YearMonth))
		}
		if _, _, _, err := overtime.ParseWorkDate(summary.WorkDate); err != nil {
			return overtime.NewValidationError(summaryField(i, "work_date"), summary.WorkDate,
				"work_date must be a calendar date in YYYY-MM-DD format")
		}
		if summary.HasClockPair() && summary.ClockInAt.After(*summary.ClockOutAt) {
			return overtime.NewValidationError(summaryField(i, "clock_in_at"), overtime.FormatInstant(*summary.ClockInAt),
				fmt.Sprintf("clock_in_at must not be after clock_out_at %s", overtime.FormatInstant(*summary.ClockOutAt)))
		}
		if summary.OvertimeMinutes < 0 {
			return overtime.NewValidationError(summaryField(i, "overtime_minutes"), summary.OvertimeMinutes,
				"overtime_minutes must be non-negative")
		}
	}

	return nil
}

// CheckConsistency lists countable summaries whose stored overtime differs
// from the overtime their clock times produce.
func (c *Calculator) CheckConsistency(input overtime.MonthlyOvertimeInput) []overtime.Inconsistency {
	var found []overtime.Inconsistency
	for _, summary := range input.DailySummaries {
		if !summary.IsCountable() {
			continue
		}
		recomputed := c.CalcDailyOvertime(summary)
		if recomputed != summary.OvertimeMinutes {
			found = append(found, overtime.Inconsistency{
				WorkDate:          summary.WorkDate,
				StoredMinutes:     summary.OvertimeMinutes,
				RecomputedMinutes: recomputed,
			})
		}
	}
	return found
}

func (c *Calculator) requireConsistent(input overtime.MonthlyOvertimeInput) error {
	for i, summary := range input.DailySummaries {
		if !summary.IsCountable() {
			continue
		}
		if recomputed := c.CalcDailyOvertime(summary); recomputed != summary.OvertimeMinutes {
			return overtime.NewValidationError(summaryField(i, "overtime_minutes"), summary.OvertimeMinutes,
				fmt.Sprintf("overtime_minutes disagrees with clock times (recomputed %d)", recomputed))
		}
	}
	return nil
}

func summaryField(i int, field string) string {
	return fmt.Sprintf("daily_summaries[%d].%s", i, field)
}
