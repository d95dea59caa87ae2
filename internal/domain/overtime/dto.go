package overtime

import (
	"strconv"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// ROUNDING DTOs
// ========================================

type RoundRequest struct {
	Instant string `json:"instant"`
}

type RoundResponse struct {
	Instant string `json:"instant"`
	Rounded string `json:"rounded"`
}

// ========================================
// DAILY DTOs
// ========================================

type DailySummaryRequest struct {
	EmployeeID      string  `json:"employee_id"`
	WorkDate        string  `json:"work_date"` // YYYY-MM-DD
	ClockInAt       *string `json:"clock_in_at"`
	ClockOutAt      *string `json:"clock_out_at"`
	WorkType        string  `json:"work_type"`
	WorkMinutes     int     `json:"work_minutes"`
	OvertimeMinutes int     `json:"overtime_minutes"`
	ApprovalStatus  string  `json:"approval_status"`
	LateMinutes     int     `json:"late_minutes"`
	Status          string  `json:"status"`
}

var (
	validWorkTypes        = []string{string(WorkTypeNormal), string(WorkTypeHoliday), string(WorkTypeAbsence)}
	validApprovalStatuses = []string{string(ApprovalStatusApproved), string(ApprovalStatusPending), string(ApprovalStatusRejected), string(ApprovalStatusNone)}
	validDayStatuses      = []string{string(DayStatusCompleted), string(DayStatusInProgress), string(DayStatusMissingClockOut), string(DayStatusPending)}
	validStampTypes       = []string{string(StampTypeClockIn), string(StampTypeClockOut)}
	validStampSources     = []string{string(StampSourceNormal), string(StampSourceCorrection), string(StampSourceBulkCorrection)}
)

func (r *DailySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.WorkDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "work_date",
			Message: "work_date must be in YYYY-MM-DD format",
		})
	}

	if r.WorkType == "" {
		r.WorkType = string(WorkTypeNormal)
	}
	if !validator.IsInSlice(r.WorkType, validWorkTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type must be one of: normal, holiday, absence",
		})
	}

	if r.ApprovalStatus == "" {
		r.ApprovalStatus = string(ApprovalStatusNone)
	}
	if !validator.IsInSlice(r.ApprovalStatus, validApprovalStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "approval_status",
			Message: "approval_status must be one of: approved, pending, rejected, none",
		})
	}

	if r.Status == "" {
		r.Status = string(DayStatusCompleted)
	}
	if !validator.IsInSlice(r.Status, validDayStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: completed, in_progress, missing_clock_out, pending",
		})
	}

	if r.LateMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_minutes",
			Message: "late_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity parses clock instants. Validate must have been called first.
func (r DailySummaryRequest) ToEntity() (DailyWorkSummary, error) {
	summary := DailyWorkSummary{
		EmployeeID:      r.EmployeeID,
		WorkDate:        r.WorkDate,
		WorkType:        WorkType(r.WorkType),
		WorkMinutes:     r.WorkMinutes,
		OvertimeMinutes: r.OvertimeMinutes,
		ApprovalStatus:  ApprovalStatus(r.ApprovalStatus),
		LateMinutes:     r.LateMinutes,
		Status:          DayStatus(r.Status),
	}

	if r.ClockInAt != nil {
		t, err := ParseInstant("clock_in_at", *r.ClockInAt)
		if err != nil {
			return DailyWorkSummary{}, err
		}
		summary.ClockInAt = &t
	}
	if r.ClockOutAt != nil {
		t, err := ParseInstant("clock_out_at", *r.ClockOutAt)
		if err != nil {
			return DailyWorkSummary{}, err
		}
		summary.ClockOutAt = &t
	}

	return summary, nil
}

type DailyOvertimeResponse struct {
	WorkDate        string `json:"work_date"`
	Countable       bool   `json:"countable"`
	OvertimeMinutes int    `json:"overtime_minutes"`
	Overtime        string `json:"overtime"`
}

// ========================================
// MONTHLY DTOs
// ========================================

type TimeStampRequest struct {
	EmployeeID string `json:"employee_id"`
	StampType  string `json:"stamp_type"`
	StampedAt  string `json:"stamped_at"`
	Source     string `json:"source"`
}

func (r *TimeStampRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.StampType, validStampTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "stamp_type",
			Message: "stamp_type must be one of: clock_in, clock_out",
		})
	}

	if r.Source == "" {
		r.Source = string(StampSourceNormal)
	}
	if !validator.IsInSlice(r.Source, validStampSources) {
		errs = append(errs, validator.ValidationError{
			Field:   "source",
			Message: "source must be one of: normal, correction, bulk_correction",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r TimeStampRequest) ToEntity() (TimeStamp, error) {
	stampedAt, err := ParseInstant("stamped_at", r.StampedAt)
	if err != nil {
		return TimeStamp{}, err
	}
	return TimeStamp{
		EmployeeID: r.EmployeeID,
		StampType:  StampType(r.StampType),
		StampedAt:  stampedAt,
		Source:     StampSource(r.Source),
	}, nil
}

type MonthlyOvertimeRequest struct {
	EmployeeID         string                `json:"employee_id"`
	YearMonth          string                `json:"year_month"` // YYYY-MM
	DailySummaries     []DailySummaryRequest `json:"daily_summaries"`
	TimeStamps         []TimeStampRequest    `json:"time_stamps"`
	WorkingDaysInMonth int                   `json:"working_days_in_month"`
	ActualWorkingDays  int                   `json:"actual_working_days"`
	HourlyWage         *string               `json:"hourly_wage,omitempty"`
}

// Validate checks element shapes only. Period and day-count rules belong to
// the aggregator so that they surface as overtime validation errors.
func (r *MonthlyOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	for i := range r.DailySummaries {
		if err := r.DailySummaries[i].Validate(); err != nil {
			for _, e := range err.(validator.ValidationErrors) {
				e.Field = "daily_summaries[" + strconv.Itoa(i) + "]." + e.Field
				errs = append(errs, e)
			}
		}
	}

	for i := range r.TimeStamps {
		if err := r.TimeStamps[i].Validate(); err != nil {
			for _, e := range err.(validator.ValidationErrors) {
				e.Field = "time_stamps[" + strconv.Itoa(i) + "]." + e.Field
				errs = append(errs, e)
			}
		}
	}

	if r.HourlyWage != nil {
		if _, err := decimal.NewFromString(*r.HourlyWage); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "hourly_wage",
				Message: "hourly_wage must be a decimal number",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity keeps a missing daily_summaries list nil so the aggregator can
// tell it apart from an empty month.
func (r MonthlyOvertimeRequest) ToEntity() (MonthlyOvertimeInput, error) {
	input := MonthlyOvertimeInput{
		EmployeeID:         r.EmployeeID,
		YearMonth:          r.YearMonth,
		WorkingDaysInMonth: r.WorkingDaysInMonth,
		ActualWorkingDays:  r.ActualWorkingDays,
	}

	if r.DailySummaries != nil {
		input.DailySummaries = make([]DailyWorkSummary, 0, len(r.DailySummaries))
		for _, s := range r.DailySummaries {
			summary, err := s.ToEntity()
			if err != nil {
				return MonthlyOvertimeInput{}, err
			}
			input.DailySummaries = append(input.DailySummaries, summary)
		}
	}

	for _, ts := range r.TimeStamps {
		stamp, err := ts.ToEntity()
		if err != nil {
			return MonthlyOvertimeInput{}, err
		}
		input.TimeStamps = append(input.TimeStamps, stamp)
	}

	return input, nil
}

type EmployeeMonthlyRequest struct {
	EmployeeID         string  `json:"employee_id"`
	YearMonth          string  `json:"year_month"`
	WorkingDaysInMonth int     `json:"working_days_in_month"`
	ActualWorkingDays  int     `json:"actual_working_days"`
	HourlyWage         *string `json:"hourly_wage,omitempty"`
}

func (r *EmployeeMonthlyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if !validator.IsValidYearMonth(r.YearMonth) {
		errs = append(errs, validator.ValidationError{
			Field:   "year_month",
			Message: "year_month must be in YYYY-MM format",
		})
	}

	if r.HourlyWage != nil {
		if _, err := decimal.NewFromString(*r.HourlyWage); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "hourly_wage",
				Message: "hourly_wage must be a decimal number",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type InconsistencyResponse struct {
	WorkDate          string `json:"work_date"`
	StoredMinutes     int    `json:"stored_minutes"`
	RecomputedMinutes int    `json:"recomputed_minutes"`
}

type PremiumResponse struct {
	HourlyWage           string `json:"hourly_wage"`
	WithinThresholdPay   string `json:"within_threshold_pay"`
	OverThresholdPay     string `json:"over_threshold_pay"`
	HolidayPremium       string `json:"holiday_premium"`
	LateNightPremium     string `json:"late_night_premium"`
	Total                string `json:"total"`
	OverThresholdMinutes int    `json:"over_threshold_minutes"`
}

type MonthlyOvertimeResponse struct {
	EmployeeID             string                  `json:"employee_id"`
	YearMonth              string                  `json:"year_month"`
	TotalOvertimeMinutes   int                     `json:"total_overtime_minutes"`
	RegularOvertimeMinutes int                     `json:"regular_overtime_minutes"`
	ExcessOvertimeMinutes  int                     `json:"excess_overtime_minutes"`
	HolidayWorkMinutes     int                     `json:"holiday_work_minutes"`
	LateNightMinutes       int                     `json:"late_night_minutes"`
	TotalOvertime          string                  `json:"total_overtime"`
	RegularOvertime        string                  `json:"regular_overtime"`
	ExcessOvertime         string                  `json:"excess_overtime"`
	HolidayWork            string                  `json:"holiday_work"`
	LateNight              string                  `json:"late_night"`
	StampCount             int                     `json:"stamp_count"`
	CorrectionStampCount   int                     `json:"correction_stamp_count"`
	Inconsistencies        []InconsistencyResponse `json:"inconsistencies,omitempty"`
	Premium                *PremiumResponse        `json:"premium,omitempty"`
}

// ========================================
// FORMAT DTOs
// ========================================

type FormatTimeResponse struct {
	Minutes   int    `json:"minutes"`
	Formatted string `json:"formatted"`
}

// FormatInstant renders an instant in the wall-clock layout used by responses.
func FormatInstant(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}
