package fx

import (
	"go.uber.org/fx"

	"seller-scout/internal/app/health"
	"seller-scout/internal/router"
)

var Module = fx.Options(
	fx.Provide(router.AsRoute(health.NewHandler)),
)
