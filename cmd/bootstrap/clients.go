package bootstrap

import (
	"runes-gateway/internal/client/liquidium"
	"runes-gateway/internal/client/ordiscan"
	"runes-gateway/internal/client/satsterminal"
	"runes-gateway/internal/pkg/config"
	"runes-gateway/internal/usecase"

	"go.uber.org/fx"
)

var ClientModule = fx.Module("clients",
	fx.Provide(
		fx.Annotate(
			NewLiquidiumClient,
			fx.As(new(usecase.LendingAuthClient)),
			fx.As(new(usecase.LendingBorrowClient)),
		),
		fx.Annotate(
			NewSatsTerminalClient,
			fx.As(new(usecase.AggregatorClient)),
		),
		fx.Annotate(
			NewOrdiscanClient,
			fx.As(new(usecase.IndexerClient)),
		),
	),
)

func NewLiquidiumClient(cfg config.Config) *liquidium.Client {
	return liquidium.NewClient(cfg.Liquidium)
}

func NewSatsTerminalClient(cfg config.Config) *satsterminal.Client {
	return satsterminal.NewClient(cfg.SatsTerminal)
}

func NewOrdiscanClient(cfg config.Config) *ordiscan.Client {
	return ordiscan.NewClient(cfg.Ordiscan)
}
