package components

import (
	"runes-gateway/internal/infra/repository"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewTokenRepository,
		repository.NewRuneRepository,
		repository.NewBorrowRangeRepository,
		repository.NewPopularRunesRepository,
	),
)
