package overtime

import (
	"context"
)

// OvertimeService exposes the overtime rules to payroll callers
type OvertimeService interface {
	// RoundToQuarter rounds a clock instant up to the next rounding boundary
	RoundToQuarter(ctx context.Context, req RoundRequest) (RoundResponse, error)

	// CalcDaily computes one day's overtime from its clock times
	CalcDaily(ctx context.Context, req DailySummaryRequest) (DailyOvertimeResponse, error)

	// CalcMonthly aggregates caller-supplied summaries for one period
	CalcMonthly(ctx context.Context, req MonthlyOvertimeRequest) (MonthlyOvertimeResponse, error)

	// CalcMonthlyForEmployee loads the employee's summaries for the caller's company and aggregates them
	CalcMonthlyForEmployee(ctx context.Context, req EmployeeMonthlyRequest) (MonthlyOvertimeResponse, error)

	// FormatTime renders whole minutes as HH:MM
	FormatTime(ctx context.Context, minutes string) (FormatTimeResponse, error)
}
