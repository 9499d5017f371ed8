package usecase

import (
	"context"
	"log/slog"
	"strings"

	"runes-gateway/internal/infra"
	"runes-gateway/internal/usecase/readmodel"
)

type RuneRepository interface {
	FindByID(ctx context.Context, id string) (*readmodel.RuneRM, error)
	FindByName(ctx context.Context, name string) (*readmodel.RuneRM, error)
	FindByIDPrefix(ctx context.Context, prefix string) (*readmodel.RuneRM, error)
	Save(ctx context.Context, rec *readmodel.RuneRM) error
}

// Reserved name the protocol assigns to the Liquidium token; name lookups for
// common aliases fall back to it.
const reservedLiquidiumName = "LIQUIDIUMTOKEN"

// RuneResolver translates a user-supplied rune name or partial id into the
// canonical "block:tx" identifier.
type RuneResolver interface {
	// Resolve never fails; when nothing matches, the original input is
	// returned unchanged and the downstream service reports not-found.
	Resolve(ctx context.Context, input string) string
}

type runeResolverImpl struct {
	runes RuneRepository
}

func NewRuneResolver(runes RuneRepository) RuneResolver {
	return &runeResolverImpl{runes: runes}
}

func (r *runeResolverImpl) Resolve(ctx context.Context, input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return input
	}

	// Already canonical.
	if strings.Contains(trimmed, ":") {
		return trimmed
	}

	if rec := r.lookup(ctx, "name", trimmed, r.runes.FindByName); rec != nil {
		return rec.ID
	}

	if rec := r.lookup(ctx, "id prefix", trimmed, r.runes.FindByIDPrefix); rec != nil {
		return rec.ID
	}

	if normalizeRuneName(trimmed) == reservedLiquidiumName {
		if rec := r.lookup(ctx, "reserved name", reservedLiquidiumName, r.runes.FindByName); rec != nil {
			return rec.ID
		}
	}

	return input
}

func (r *runeResolverImpl) lookup(ctx context.Context, stage, arg string, find func(context.Context, string) (*readmodel.RuneRM, error)) *readmodel.RuneRM {
	rec, err := find(ctx, arg)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("rune lookup failed", "stage", stage, "input", arg, "error", err.Error())
		}
		return nil
	}
	return rec
}

// normalizeRuneName strips spacers and uppercases, matching how rune names
// are compared on-chain.
func normalizeRuneName(name string) string {
	replaced := strings.NewReplacer("•", "", ".", "", " ", "").Replace(name)
	return strings.ToUpper(replaced)
}
