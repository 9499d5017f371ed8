//go:build unit

package runeclient_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"runes-gateway/pkg/runeclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearcher(t *testing.T) {
	t.Parallel()

	t.Run("keystrokes are debounced to one search", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		results := make(chan []string, 4)

		searcher := runeclient.NewSearcher(
			func(_ context.Context, query string, _ bool) ([]string, error) {
				calls.Add(1)
				return []string{"hit for " + query}, nil
			},
			func(got []string, err error) {
				require.NoError(t, err)
				results <- got
			},
		)

		ctx := t.Context()
		searcher.Query(ctx, "d", false)
		searcher.Query(ctx, "do", false)
		searcher.Query(ctx, "dog", false)

		select {
		case got := <-results:
			assert.Equal(t, []string{"hit for dog"}, got)
		case <-time.After(5 * time.Second):
			t.Fatal("no search result delivered")
		}
		assert.Equal(t, int32(1), calls.Load(), "intermediate queries must not be searched")
	})

	t.Run("cancel drops the pending search", func(t *testing.T) {
		t.Parallel()

		results := make(chan []string, 1)

		searcher := runeclient.NewSearcher(
			func(_ context.Context, _ string, _ bool) ([]string, error) {
				return []string{"should not run"}, nil
			},
			func(got []string, _ error) {
				results <- got
			},
		)

		searcher.Query(t.Context(), "dog", false)
		searcher.Cancel()

		select {
		case got := <-results:
			t.Fatalf("unexpected delivery: %v", got)
		case <-time.After(1 * time.Second):
		}
	})
}
