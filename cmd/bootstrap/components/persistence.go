package components

import (
	"course-sectioning/internal/infra/audit"
	"course-sectioning/internal/infra/db"
	"course-sectioning/internal/infra/repository"
	"course-sectioning/internal/infra/uow"
	"course-sectioning/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// ExpectedSpace (read side outside candidate transactions)
		fx.Annotate(
			repository.NewExpectedSpaceRepository,
			fx.As(new(shared.ExpectedSpaceRepository)),
		),
		// Audit
		fx.Annotate(
			repository.NewActionLogRepository,
			fx.As(new(audit.ActionWriter)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
