package overtime

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/hris-overtime-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
)

type OvertimeServiceImpl struct {
	snapshotter postgresql.Snapshotter
	summaryRepo overtime.AttendanceSummaryRepository
	stampRepo   overtime.TimeStampRepository
	calculator  *Calculator
}

func NewOvertimeService(
	snapshotter postgresql.Snapshotter,
	summaryRepo overtime.AttendanceSummaryRepository,
	stampRepo overtime.TimeStampRepository,
	calculator *Calculator,
) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		snapshotter: snapshotter,
		summaryRepo: summaryRepo,
		stampRepo:   stampRepo,
		calculator:  calculator,
	}
}

// Helper to get company_id from JWT context
func getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", overtime.ErrMissingClaims, err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", overtime.ErrMissingClaims
	}

	return companyID, nil
}

// RoundToQuarter implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) RoundToQuarter(ctx context.Context, req overtime.RoundRequest) (resp overtime.RoundResponse, err error) {
	defer func() { metrics.RecordCalculation("round", err) }()

	rounded, err := s.calculator.RoundInstant(req.Instant)
	if err != nil {
		return overtime.RoundResponse{}, err
	}

	return overtime.RoundResponse{
		Instant: req.Instant,
		Rounded: overtime.FormatInstant(rounded),
	}, nil
}

// CalcDaily implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) CalcDaily(ctx context.Context, req overtime.DailySummaryRequest) (resp overtime.DailyOvertimeResponse, err error) {
	defer func() { metrics.RecordCalculation("daily", err) }()

	if err := req.Validate(); err != nil {
		return overtime.DailyOvertimeResponse{}, err
	}

	summary, err := req.ToEntity()
	if err != nil {
		return overtime.DailyOvertimeResponse{}, err
	}
	if summary.HasClockPair() && summary.ClockInAt.After(*summary.ClockOutAt) {
		return overtime.DailyOvertimeResponse{}, overtime.NewValidationError("clock_in_at", overtime.FormatInstant(*summary.ClockInAt),
			"clock_in_at must not be after clock_out_at")
	}

	minutes := s.calculator.CalcDailyOvertime(summary)
	formatted, err := FormatTime(minutes)
	if err != nil {
		return overtime.DailyOvertimeResponse{}, err
	}

	return overtime.DailyOvertimeResponse{
		WorkDate:        summary.WorkDate,
		Countable:       summary.IsCountable(),
		OvertimeMinutes: minutes,
		Overtime:        formatted,
	}, nil
}

// CalcMonthly implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) CalcMonthly(ctx context.Context, req overtime.MonthlyOvertimeRequest) (resp overtime.MonthlyOvertimeResponse, err error) {
	defer func() { metrics.RecordCalculation("monthly", err) }()

	if err := req.Validate(); err != nil {
		return overtime.MonthlyOvertimeResponse{}, err
	}

	input, err := req.ToEntity()
	if err != nil {
		return overtime.MonthlyOvertimeResponse{}, err
	}

	return s.aggregate(ctx, input, req.HourlyWage)
}

// CalcMonthlyForEmployee implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) CalcMonthlyForEmployee(ctx context.Context, req overtime.EmployeeMonthlyRequest) (resp overtime.MonthlyOvertimeResponse, err error) {
	defer func() { metrics.RecordCalculation("monthly_employee", err) }()

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return overtime.MonthlyOvertimeResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return overtime.MonthlyOvertimeResponse{}, err
	}

	var (
		summaries []overtime.DailyWorkSummary
		stamps    []overtime.TimeStamp
	)
	err = s.snapshotter.InSnapshot(ctx, func(txCtx context.Context) error {
		var err error
		summaries, err = s.summaryRepo.ListByEmployeeMonth(txCtx, companyID, req.EmployeeID, req.YearMonth)
		if err != nil {
			return fmt.Errorf("failed to load attendance summaries: %w", err)
		}
		stamps, err = s.stampRepo.ListByEmployeeMonth(txCtx, companyID, req.EmployeeID, req.YearMonth)
		if err != nil {
			return fmt.Errorf("failed to load time stamps: %w", err)
		}
		return nil
	})
	if err != nil {
		return overtime.MonthlyOvertimeResponse{}, err
	}

	if len(summaries) == 0 {
		return overtime.MonthlyOvertimeResponse{}, overtime.ErrSummariesNotFound
	}

	slog.Debug("loaded attendance for overtime",
		"company_id", companyID,
		"employee_id", req.EmployeeID,
		"year_month", req.YearMonth,
		"summaries", len(summaries),
		"stamps", len(stamps),
	)

	input := overtime.MonthlyOvertimeInput{
		EmployeeID:         req.EmployeeID,
		YearMonth:          req.YearMonth,
		DailySummaries:     summaries,
		TimeStamps:         stamps,
		WorkingDaysInMonth: req.WorkingDaysInMonth,
		ActualWorkingDays:  req.ActualWorkingDays,
	}

	return s.aggregate(ctx, input, req.HourlyWage)
}

// FormatTime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) FormatTime(ctx context.Context, minutes string) (resp overtime.FormatTimeResponse, err error) {
	defer func() { metrics.RecordCalculation("format", err) }()

	parsed, err := ParseMinutes(minutes)
	if err != nil {
		return overtime.FormatTimeResponse{}, err
	}

	formatted, err := FormatTime(parsed)
	if err != nil {
		return overtime.FormatTimeResponse{}, err
	}

	return overtime.FormatTimeResponse{Minutes: parsed, Formatted: formatted}, nil
}

func (s *OvertimeServiceImpl) aggregate(ctx context.Context, input overtime.MonthlyOvertimeInput, hourlyWage *string) (overtime.MonthlyOvertimeResponse, error) {
	result, err := s.calculator.CalcMonthlyOvertime(input)
	if err != nil {
		slog.Info("monthly overtime rejected",
			"employee_id", input.EmployeeID,
			"year_month", input.YearMonth,
			"error", err,
		)
		return overtime.MonthlyOvertimeResponse{}, err
	}
	metrics.RecordMonthlyResult(result)

	resp := overtime.MonthlyOvertimeResponse{
		EmployeeID:             input.EmployeeID,
		YearMonth:              input.YearMonth,
		TotalOvertimeMinutes:   result.TotalOvertimeMinutes,
		RegularOvertimeMinutes: result.RegularOvertimeMinutes,
		ExcessOvertimeMinutes:  result.ExcessOvertimeMinutes,
		HolidayWorkMinutes:     result.HolidayWorkMinutes,
		LateNightMinutes:       result.LateNightMinutes,
		TotalOvertime:          result.TotalOvertime,
		RegularOvertime:        result.RegularOvertime,
		ExcessOvertime:         result.ExcessOvertime,
		HolidayWork:            result.HolidayWork,
		LateNight:              result.LateNight,
		StampCount:             len(input.TimeStamps),
	}

	for _, ts := range input.TimeStamps {
		if ts.Source == overtime.StampSourceCorrection || ts.Source == overtime.StampSourceBulkCorrection {
			resp.CorrectionStampCount++
		}
	}

	for _, inc := range s.calculator.CheckConsistency(input) {
		resp.Inconsistencies = append(resp.Inconsistencies, overtime.InconsistencyResponse{
			WorkDate:          inc.WorkDate,
			StoredMinutes:     inc.StoredMinutes,
			RecomputedMinutes: inc.RecomputedMinutes,
		})
	}
	if len(resp.Inconsistencies) > 0 {
		slog.Warn("stored overtime disagrees with clock times",
			"employee_id", input.EmployeeID,
			"year_month", input.YearMonth,
			"days", len(resp.Inconsistencies),
		)
	}

	if hourlyWage != nil {
		wage, err := decimal.NewFromString(*hourlyWage)
		if err != nil {
			return overtime.MonthlyOvertimeResponse{}, overtime.NewValidationError("hourly_wage", *hourlyWage, "hourly_wage must be a decimal number")
		}
		premium := s.calculator.CalcPremium(result, wage)
		resp.Premium = &overtime.PremiumResponse{
			HourlyWage:           premium.HourlyWage.String(),
			WithinThresholdPay:   premium.WithinThresholdPay.StringFixed(2),
			OverThresholdPay:     premium.OverThresholdPay.StringFixed(2),
			HolidayPremium:       premium.HolidayPremium.StringFixed(2),
			LateNightPremium:     premium.LateNightPremium.StringFixed(2),
			Total:                premium.Total.StringFixed(2),
			OverThresholdMinutes: premium.OverThresholdMinutes,
		}
	}

	return resp, nil
}
