package components

import (
	"log/slog"

	"course-sectioning/internal/infra/audit"
	"course-sectioning/internal/infra/db"
	"course-sectioning/internal/infra/resection"
	"course-sectioning/internal/pkg/clock"
	"course-sectioning/internal/usecase/auditlog"
	"course-sectioning/internal/usecase/queries"
	"course-sectioning/internal/usecase/sectioning"
	"course-sectioning/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseSectioningModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	clock.NewCPUClock,
	NewAuditSink,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewExpectedSpaceQueries,
	),
)

var usecaseSectioningModule = fx.Module("usecase/sectioning",
	fx.Provide(
		sectioning.OptionsFromConfig,
		fx.Annotate(
			resection.NewFirstFit,
			fx.As(new(sectioning.Resectioner)),
		),
		NewSectioningEngine,
	),
)

// NewAuditSink records every action in the log and in sectioning_actions.
func NewAuditSink(logger *slog.Logger, dbtx db.DBTX, writer audit.ActionWriter) auditlog.Sink {
	return audit.NewMultiSink(
		audit.NewSlogSink(logger),
		audit.NewPostgresSink(dbtx, writer),
	)
}

func NewSectioningEngine(
	opts sectioning.Options,
	server sectioning.Server,
	uow shared.UnitOfWork,
	resectioner sectioning.Resectioner,
	sink auditlog.Sink,
	clk clock.Clock,
	cpu clock.CPUClock,
	logger *slog.Logger,
) sectioning.Engine {
	return sectioning.NewUsecase(opts, server, uow, resectioner, sink, clk, cpu,
		sectioning.WithLogger(logger),
	)
}
