package repository

import (
	"context"
	"encoding/json"

	"course-sectioning/internal/infra"
	"course-sectioning/internal/infra/db"
	"course-sectioning/internal/usecase/auditlog"

	"github.com/jackc/pgx/v5/pgtype"
)

type ActionLogRepository struct{}

func NewActionLogRepository() *ActionLogRepository {
	return &ActionLogRepository{}
}

const insertSectioningAction = `
INSERT INTO sectioning_actions(id, operation, student_id, offering_id, result, payload, cpu_time_ms, started_at, ended_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (r *ActionLogRepository) Insert(ctx context.Context, tx db.DBTX, a *auditlog.Action) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return infra.WrapRepoErr("failed to encode sectioning action", err)
	}

	var studentID, offeringID pgtype.Int8
	if a.Student != nil {
		studentID = pgtype.Int8{Int64: a.Student.ID, Valid: true}
	}
	if a.Offering != nil {
		offeringID = pgtype.Int8{Int64: a.Offering.ID, Valid: true}
	}

	_, err = tx.Exec(ctx, insertSectioningAction,
		a.ID, a.Operation, studentID, offeringID, string(a.Result), payload,
		a.CPUTime.Milliseconds(),
		pgtype.Timestamptz{Time: a.StartTime, Valid: true},
		pgtype.Timestamptz{Time: a.EndTime, Valid: !a.EndTime.IsZero()},
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert sectioning action", err)
	}
	return nil
}
