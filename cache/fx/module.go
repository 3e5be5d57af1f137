package fx

import (
	"go.uber.org/fx"

	"seller-scout/cache"
	"seller-scout/internal/shopee"
)

var Module = fx.Module(
	"redis",
	fx.Provide(
		cache.NewRedis,
		fx.Annotate(cache.NewProfileCache, fx.As(new(shopee.ProfileCache))),
	),
)
