package main

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	cachefx "seller-scout/cache/fx"
	appfx "seller-scout/internal/app/fx"
	healthfx "seller-scout/internal/app/health/fx"
	researchapifx "seller-scout/internal/app/researchapi/fx"
	routerfx "seller-scout/internal/router/fx"
	serverfx "seller-scout/internal/server/fx"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		appfx.CoreAppOptions,
		cachefx.Module,
		routerfx.CoreRouterOptions,
		serverfx.ServerOptions,
		healthfx.Module,
		researchapifx.Module,
	)

	app.Run()
}
