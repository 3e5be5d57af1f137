package fx

import (
	"go.uber.org/fx"

	"seller-scout/internal/server"
)

var ServerOptions = fx.Options(
	fx.Provide(server.NewHTTPServer),
	fx.Invoke(RegisterHTTPServerLifecycle),
)
