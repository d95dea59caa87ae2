package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timeStampRepository struct {
	db *database.DB
}

func NewTimeStampRepository(db *database.DB) overtime.TimeStampRepository {
	return &timeStampRepository{db: db}
}

// ListByEmployeeMonth implements overtime.TimeStampRepository.
func (t *timeStampRepository) ListByEmployeeMonth(ctx context.Context, companyID string, employeeID string, yearMonth string) ([]overtime.TimeStamp, error) {
	q := GetQuerier(ctx, t.db)

	start, end, err := monthBounds(yearMonth)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT employee_id, stamp_type, stamped_at, COALESCE(source, 'normal')
		FROM attendance_time_stamps
		WHERE employee_id = $1
		  AND company_id = $2
		  AND stamped_at >= $3
		  AND stamped_at < $4
		ORDER BY stamped_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list time stamps: %w", err)
	}

	stamps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (overtime.TimeStamp, error) {
		var (
			ts        overtime.TimeStamp
			stampType string
			source    string
		)
		err := row.Scan(&ts.EmployeeID, &stampType, &ts.StampedAt, &source)
		ts.StampType = overtime.StampType(stampType)
		ts.Source = overtime.StampSource(source)
		return ts, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan time stamps: %w", err)
	}

	return stamps, nil
}
