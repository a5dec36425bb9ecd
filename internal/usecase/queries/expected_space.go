package queries

import (
	"context"
	"time"

	"course-sectioning/internal/infra/db"
	"course-sectioning/internal/usecase/shared"
)

//go:generate mockgen -source=expected_space.go -destination=../../../tests/mock/queries/expected_space_mock.go -package=queriesmock

// ExpectedSpaceView is the read model of one section's projected free seats.
type ExpectedSpaceView struct {
	SectionID int64     `json:"section_id"`
	Available int       `json:"available"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ExpectedSpaceQueries interface {
	ListByOffering(ctx context.Context, offeringID int64) ([]ExpectedSpaceView, error)
}

type expectedSpaceQueries struct {
	uow  shared.UnitOfWork
	repo shared.ExpectedSpaceRepository
}

func NewExpectedSpaceQueries(uow shared.UnitOfWork, repo shared.ExpectedSpaceRepository) ExpectedSpaceQueries {
	return &expectedSpaceQueries{uow: uow, repo: repo}
}

func (q *expectedSpaceQueries) ListByOffering(ctx context.Context, offeringID int64) ([]ExpectedSpaceView, error) {
	var out []ExpectedSpaceView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		rows, err := q.repo.ListByOffering(ctx, db, offeringID)
		if err != nil {
			return err
		}
		out = make([]ExpectedSpaceView, len(rows))
		for i, r := range rows {
			out[i] = ExpectedSpaceView{SectionID: r.SectionID, Available: r.Available, UpdatedAt: r.UpdatedAt}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
