package components

import (
	"runes-gateway/internal/handler"
	"runes-gateway/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBorrowHandler,
		api.NewSwapHandler,
		api.NewRuneHandler,
	),
	fx.Invoke(handler.NewRouter),
)
