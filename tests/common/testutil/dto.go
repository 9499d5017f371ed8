//go:build unit

package testutil

import (
	"encoding/json"
	"testing"
)

// DtoMap marshals a request struct into a map and applies mutations, for
// building near-valid JSON bodies in handler tests.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, _ := json.Marshal(v)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	for _, f := range muts {
		f(m)
	}
	return m
}
