package repository

import (
	"context"
	"time"

	"course-sectioning/internal/infra"
	"course-sectioning/internal/infra/db"
)

type CourseDemandRepository struct{}

func NewCourseDemandRepository() *CourseDemandRepository {
	return &CourseDemandRepository{}
}

const updateCourseDemandWaitlist = `
UPDATE course_demands SET waitlist = $2, updated_at = $3
WHERE id = $1`

func (r *CourseDemandRepository) SetWaitlist(ctx context.Context, tx db.DBTX, courseDemandID int64, waitlist bool, at time.Time) error {
	tag, err := tx.Exec(ctx, updateCourseDemandWaitlist, courseDemandID, waitlist, at)
	if err != nil {
		return infra.WrapRepoErr("failed to update course demand waitlist", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "course demand not found")
	}
	return nil
}
