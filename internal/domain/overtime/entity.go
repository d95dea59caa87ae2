package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

// StampType enum
type StampType string

const (
	StampTypeClockIn  StampType = "clock_in"
	StampTypeClockOut StampType = "clock_out"
)

// StampSource enum
type StampSource string

const (
	StampSourceNormal         StampSource = "normal"
	StampSourceCorrection     StampSource = "correction"
	StampSourceBulkCorrection StampSource = "bulk_correction"
)

// WorkType enum
type WorkType string

const (
	WorkTypeNormal  WorkType = "normal"
	WorkTypeHoliday WorkType = "holiday"
	WorkTypeAbsence WorkType = "absence"
)

// ApprovalStatus enum
type ApprovalStatus string

const (
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusRejected ApprovalStatus = "rejected"
	ApprovalStatusNone     ApprovalStatus = "none"
)

// DayStatus enum
type DayStatus string

const (
	DayStatusCompleted       DayStatus = "completed"
	DayStatusInProgress      DayStatus = "in_progress"
	DayStatusMissingClockOut DayStatus = "missing_clock_out"
	DayStatusPending         DayStatus = "pending"
)

// Role of the caller, read from the access token
type Role string

const (
	RoleOwner    Role = "owner"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// TimeStamp - a single clock event captured upstream
type TimeStamp struct {
	EmployeeID string
	StampType  StampType
	StampedAt  time.Time
	Source     StampSource
}

// DailyWorkSummary - one employee-day of attendance
type DailyWorkSummary struct {
	EmployeeID      string
	WorkDate        string // YYYY-MM-DD
	ClockInAt       *time.Time
	ClockOutAt      *time.Time
	WorkType        WorkType
	WorkMinutes     int
	OvertimeMinutes int
	ApprovalStatus  ApprovalStatus
	LateMinutes     int
	Status          DayStatus
}

// HasClockPair reports whether both clock times are present.
func (s DailyWorkSummary) HasClockPair() bool {
	return s.ClockInAt != nil && s.ClockOutAt != nil
}

// IsCountable reports whether the day's overtime may be included in totals.
// Unresolved punches and pending or rejected overtime requests are excluded.
func (s DailyWorkSummary) IsCountable() bool {
	if s.Status == DayStatusMissingClockOut || s.Status == DayStatusPending {
		return false
	}
	if s.ApprovalStatus == ApprovalStatusPending || s.ApprovalStatus == ApprovalStatusRejected {
		return false
	}
	return true
}

// MonthlyOvertimeInput - aggregation request for one employee and period
type MonthlyOvertimeInput struct {
	EmployeeID         string
	YearMonth          string // YYYY-MM
	DailySummaries     []DailyWorkSummary
	TimeStamps         []TimeStamp
	WorkingDaysInMonth int
	ActualWorkingDays  int
}

// MonthlyOvertimeResult - computed monthly figures
type MonthlyOvertimeResult struct {
	TotalOvertimeMinutes   int
	RegularOvertimeMinutes int
	ExcessOvertimeMinutes  int
	HolidayWorkMinutes     int
	LateNightMinutes       int

	TotalOvertime   string
	RegularOvertime string
	ExcessOvertime  string
	HolidayWork     string
	LateNight       string
}

// Inconsistency - a summary whose stored overtime disagrees with its clock times
type Inconsistency struct {
	WorkDate          string
	StoredMinutes     int
	RecomputedMinutes int
}

// PremiumBreakdown - overtime pay split by surcharge band
type PremiumBreakdown struct {
	HourlyWage           decimal.Decimal
	WithinThresholdPay   decimal.Decimal
	OverThresholdPay     decimal.Decimal
	HolidayPremium       decimal.Decimal
	LateNightPremium     decimal.Decimal
	Total                decimal.Decimal
	OverThresholdMinutes int
}
