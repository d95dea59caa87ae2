package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/database"
)

type attendanceSummaryRepository struct {
	db *database.DB
}

func NewAttendanceSummaryRepository(db *database.DB) overtime.AttendanceSummaryRepository {
	return &attendanceSummaryRepository{db: db}
}

// monthBounds returns the first day of yearMonth and of the month after it.
func monthBounds(yearMonth string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return time.Time{}, time.Time{}, overtime.NewValidationError("year_month", yearMonth, "year_month must be in YYYY-MM format")
	}
	return start, start.AddDate(0, 1, 0), nil
}

// ListByEmployeeMonth implements overtime.AttendanceSummaryRepository.
func (a *attendanceSummaryRepository) ListByEmployeeMonth(ctx context.Context, companyID string, employeeID string, yearMonth string) ([]overtime.DailyWorkSummary, error) {
	q := GetQuerier(ctx, a.db)

	start, end, err := monthBounds(yearMonth)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT a.employee_id, a.date, a.clock_in, a.clock_out,
			   COALESCE(a.work_type, 'normal'),
			   COALESCE(a.work_hours_in_minutes, 0),
			   COALESCE(a.overtime_minutes, 0),
			   COALESCE(a.overtime_approval_status, 'none'),
			   COALESCE(a.late_minutes, 0),
			   COALESCE(a.punch_status, 'completed')
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.company_id = $2
		  AND a.date >= $3
		  AND a.date < $4
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance summaries: %w", err)
	}
	defer rows.Close()

	summaries := make([]overtime.DailyWorkSummary, 0)
	for rows.Next() {
		var (
			s              overtime.DailyWorkSummary
			date           time.Time
			workType       string
			approvalStatus string
			status         string
		)
		if err := rows.Scan(
			&s.EmployeeID, &date, &s.ClockInAt, &s.ClockOutAt,
			&workType, &s.WorkMinutes, &s.OvertimeMinutes,
			&approvalStatus, &s.LateMinutes, &status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance summary: %w", err)
		}
		s.WorkDate = date.Format("2006-01-02")
		s.WorkType = overtime.WorkType(workType)
		s.ApprovalStatus = overtime.ApprovalStatus(approvalStatus)
		s.Status = overtime.DayStatus(status)
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance summaries: %w", err)
	}

	return summaries, nil
}
