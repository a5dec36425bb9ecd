//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateCourseDemand inserts a course demand with one course request line.
func CreateCourseDemand(t *testing.T, db DBLike, demandID, studentID, courseID int64, waitlist bool) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO course_demands (id, student_id, priority, alternative, waitlist) VALUES ($1, $2, 0, false, $3)",
		demandID, studentID, waitlist)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"INSERT INTO course_requests (id, course_demand_id, course_id, ord) VALUES ($1, $1, $2, 0)",
		demandID, courseID)
	require.NoError(t, err)
}

// CreateClassEnrollment inserts one student/class row as another user wrote it.
func CreateClassEnrollment(t *testing.T, db DBLike, studentID, classID, courseID, demandID int64, changedBy string, enrolledAt time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO student_class_enrollments (student_id, class_id, course_id, course_demand_id, changed_by, enrolled_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		studentID, classID, courseID, demandID, changedBy, enrolledAt)
	require.NoError(t, err)
}

func CourseDemandWaitlist(t *testing.T, db DBLike, demandID int64) bool {
	t.Helper()

	var waitlist bool
	err := db.QueryRow(context.Background(), "SELECT waitlist FROM course_demands WHERE id = $1", demandID).Scan(&waitlist)
	require.NoError(t, err)
	return waitlist
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
