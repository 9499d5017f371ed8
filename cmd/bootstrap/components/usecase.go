package components

import (
	"runes-gateway/internal/pkg/clock"
	"runes-gateway/internal/pkg/config"
	"runes-gateway/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		func(cfg config.Config) config.CacheConfig {
			return cfg.Cache
		},
		usecase.NewRuneResolver,
		usecase.NewAuthUseCase,
		usecase.NewBorrowUseCase,
		usecase.NewSwapUseCase,
		usecase.NewRuneInfoUseCase,
	),
)
