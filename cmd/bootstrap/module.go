package bootstrap

import (
	"course-sectioning/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// EngineModule wires the resectioning engine without the HTTP layer.
var EngineModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	SnapshotModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	EngineModule,
	JWTModule,
	components.AuthModule,
	components.HandlerModule,
)
