package overtime

import "context"

// AttendanceSummaryRepository reads daily summaries kept by the attendance subsystem.
// All methods include companyID parameter to prevent cross-company data access attacks.
type AttendanceSummaryRepository interface {
	// ListByEmployeeMonth returns the employee's summaries whose work date falls in yearMonth, ordered by date
	ListByEmployeeMonth(ctx context.Context, companyID string, employeeID string, yearMonth string) ([]DailyWorkSummary, error)
}

// TimeStampRepository reads raw clock events, corrections included.
type TimeStampRepository interface {
	ListByEmployeeMonth(ctx context.Context, companyID string, employeeID string, yearMonth string) ([]TimeStamp, error)
}
