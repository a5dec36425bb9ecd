package repository

import (
	"context"
	"time"

	"course-sectioning/internal/infra"
	"course-sectioning/internal/infra/db"
	"course-sectioning/internal/pkg/ptr"
	"course-sectioning/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type ClassEnrollmentRepository struct{}

func NewClassEnrollmentRepository() *ClassEnrollmentRepository {
	return &ClassEnrollmentRepository{}
}

const deleteClassEnrollmentsForRequest = `
DELETE FROM student_class_enrollments
WHERE student_id = $1 AND (course_demand_id = $2 OR course_id = $3)
RETURNING student_id, class_id, course_id, course_demand_id, changed_by, enrolled_at, approved_by, approved_at`

func (r *ClassEnrollmentRepository) DeleteForRequest(ctx context.Context, tx db.DBTX, studentID, courseDemandID, courseID int64) ([]shared.ClassEnrollmentRow, error) {
	rows, err := tx.Query(ctx, deleteClassEnrollmentsForRequest, studentID, courseDemandID, courseID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete class enrollments", err)
	}
	defer rows.Close()

	out, err := scanClassEnrollments(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read deleted class enrollments", err)
	}
	return out, nil
}

const insertClassEnrollment = `
INSERT INTO student_class_enrollments(student_id, class_id, course_id, course_demand_id, changed_by, enrolled_at, approved_by, approved_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *ClassEnrollmentRepository) Insert(ctx context.Context, tx db.DBTX, row shared.ClassEnrollmentRow) error {
	_, err := tx.Exec(ctx, insertClassEnrollment,
		row.StudentID, row.ClassID, row.CourseID, row.CourseDemandID, row.ChangedBy,
		pgtype.Timestamptz{Time: row.EnrolledAt, Valid: true},
		ptr.TextOf(row.ApprovedBy), ptr.TimestamptzOf(row.ApprovedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert class enrollment", err)
	}
	return nil
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanClassEnrollments(rows rowScanner) ([]shared.ClassEnrollmentRow, error) {
	var out []shared.ClassEnrollmentRow
	for rows.Next() {
		var (
			row        shared.ClassEnrollmentRow
			enrolledAt time.Time
			approvedBy pgtype.Text
			approvedAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&row.StudentID, &row.ClassID, &row.CourseID, &row.CourseDemandID, &row.ChangedBy,
			&enrolledAt, &approvedBy, &approvedAt,
		); err != nil {
			return nil, err
		}
		row.EnrolledAt = enrolledAt
		row.ApprovedBy = ptr.StringFromPgtype(approvedBy)
		row.ApprovedAt = ptr.TimeFromPgtype(approvedAt)
		out = append(out, row)
	}
	return out, rows.Err()
}
