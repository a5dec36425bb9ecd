package components

import (
	"course-sectioning/internal/handler"
	"course-sectioning/internal/handler/api"
	"course-sectioning/internal/handler/middleware"
	"course-sectioning/internal/usecase"

	"go.uber.org/fx"
)

var AuthModule = fx.Module("auth",
	fx.Provide(
		usecase.NewTokenValidator,
		middleware.NewAuthMiddleware,
	),
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSectioningHandler,
	),
	fx.Invoke(handler.NewRouter),
)
