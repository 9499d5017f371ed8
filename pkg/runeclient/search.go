package runeclient

import (
	"context"
	"time"

	"runes-gateway/internal/pkg/flow"
)

const searchDebounceInterval = 300 * time.Millisecond

// SearchFunc performs the actual search call, typically against the gateway's
// /api/swap/search route.
type SearchFunc[T any] func(ctx context.Context, query string, sell bool) (T, error)

type SearchHandler[T any] func(results T, err error)

// Searcher debounces free-text search input and delivers only the latest
// query's results.
type Searcher[T any] struct {
	search   SearchFunc[T]
	handle   SearchHandler[T]
	debounce *flow.Debouncer
	seq      *flow.Sequencer
}

func NewSearcher[T any](search SearchFunc[T], handle SearchHandler[T]) *Searcher[T] {
	return &Searcher[T]{
		search:   search,
		handle:   handle,
		debounce: flow.NewDebouncer(searchDebounceInterval),
		seq:      flow.NewSequencer(),
	}
}

// Query schedules a search once typing has settled. A newer Query replaces a
// pending one.
func (s *Searcher[T]) Query(ctx context.Context, query string, sell bool) {
	s.debounce.Do(func() {
		s.run(ctx, query, sell)
	})
}

// Cancel drops any pending search.
func (s *Searcher[T]) Cancel() {
	s.debounce.Cancel()
}

func (s *Searcher[T]) run(ctx context.Context, query string, sell bool) {
	seq := s.seq.Next()

	results, err := s.search(ctx, query, sell)
	if !s.seq.Current(seq) {
		return
	}

	s.handle(results, err)
}
