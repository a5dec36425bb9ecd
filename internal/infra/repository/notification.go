package repository

import (
	"context"
	"time"

	"course-sectioning/internal/infra"
	"course-sectioning/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Jobs are picked up by the mail worker while queued.
const NotificationStatusQueued = "queued"

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

const createNotificationJob = `
INSERT INTO notification_jobs(id, kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx, createNotificationJob,
		uuid.New(), kind, topic, payload,
		pgtype.Timestamptz{Time: runAt, Valid: true},
		NotificationStatusQueued,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
