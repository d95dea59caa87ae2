package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

const schemaDDL = `
CREATE TABLE attendances (
	id                       UUID PRIMARY KEY,
	company_id               UUID NOT NULL,
	employee_id              UUID NOT NULL,
	date                     DATE NOT NULL,
	clock_in                 TIMESTAMPTZ,
	clock_out                TIMESTAMPTZ,
	work_type                VARCHAR(20),
	work_hours_in_minutes    INT,
	overtime_minutes         INT,
	overtime_approval_status VARCHAR(20),
	late_minutes             INT,
	punch_status             VARCHAR(30)
);

CREATE TABLE attendance_time_stamps (
	id          UUID PRIMARY KEY,
	company_id  UUID NOT NULL,
	employee_id UUID NOT NULL,
	stamp_type  VARCHAR(20) NOT NULL,
	stamped_at  TIMESTAMPTZ NOT NULL,
	source      VARCHAR(20)
);
`

// setupSchema creates the tables in a throwaway schema and returns a DB whose
// search_path points at it.
func setupSchema(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	admin, err := database.NewPostgreSQLDB(ctx, dsn, 2, 1)
	require.NoError(t, err)
	t.Cleanup(admin.Close)

	schema := fmt.Sprintf("overtime_test_%d", time.Now().UnixNano())
	_, err = admin.Exec(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = admin.Exec(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
	})

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	db, err := database.NewPostgreSQLDB(ctx, dsn+sep+"search_path="+schema, 4, 1)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Exec(ctx, schemaDDL)
	require.NoError(t, err)

	return db
}

func strPtr(s string) *string { return &s }
