package repository

import (
	"context"
	"time"

	"course-sectioning/internal/domain/sectioning"
	"course-sectioning/internal/infra"
	"course-sectioning/internal/infra/db"
	"course-sectioning/internal/usecase/shared"
)

type ExpectedSpaceRepository struct{}

func NewExpectedSpaceRepository() *ExpectedSpaceRepository {
	return &ExpectedSpaceRepository{}
}

const upsertExpectedSpace = `
INSERT INTO expected_spaces(offering_id, section_id, available, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (offering_id, section_id)
DO UPDATE SET available = EXCLUDED.available, updated_at = EXCLUDED.updated_at`

func (r *ExpectedSpaceRepository) Upsert(ctx context.Context, tx db.DBTX, offeringID int64, spaces []sectioning.ExpectedSpace, at time.Time) error {
	for _, s := range spaces {
		if _, err := tx.Exec(ctx, upsertExpectedSpace, offeringID, s.SectionID, s.Available, at); err != nil {
			return infra.WrapRepoErr("failed to upsert expected space", err)
		}
	}
	return nil
}

const listExpectedSpacesByOffering = `
SELECT offering_id, section_id, available, updated_at
FROM expected_spaces
WHERE offering_id = $1
ORDER BY section_id`

func (r *ExpectedSpaceRepository) ListByOffering(ctx context.Context, tx db.DBTX, offeringID int64) ([]shared.ExpectedSpaceRow, error) {
	rows, err := tx.Query(ctx, listExpectedSpacesByOffering, offeringID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expected spaces", err)
	}
	defer rows.Close()

	var out []shared.ExpectedSpaceRow
	for rows.Next() {
		var row shared.ExpectedSpaceRow
		if err := rows.Scan(&row.OfferingID, &row.SectionID, &row.Available, &row.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to read expected space", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read expected spaces", err)
	}
	return out, nil
}
