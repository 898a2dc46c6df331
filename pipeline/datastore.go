// Package pipeline provides the minimal stage framework the histogram
// splitter runs in: a key-value data store threaded through modules, the
// Module transform interface, and the shared feature-resolution routine.
package pipeline

import (
	"fmt"

	"github.com/histkit/histkit/errs"
)

// DataStore is the mutable key-value map passed between pipeline stages.
// Each stage reads named inputs and writes named outputs; there is no hidden
// global state.
type DataStore map[string]any

// Get retrieves the value at key, asserting it has type T.
func Get[T any](ds DataStore, key string) (T, error) {
	var zero T

	raw, ok := ds[key]
	if !ok {
		return zero, fmt.Errorf("%w: %q", errs.ErrKeyNotFound, key)
	}

	value, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q holds %T", errs.ErrWrongKeyType, key, raw)
	}

	return value, nil
}

// Module is one pipeline stage. Transform reads its inputs from the store,
// writes its outputs back, and returns the store for chaining. Per-item
// degradation is handled inside the stage; a returned error means the stage
// as a whole could not run.
type Module interface {
	Transform(ds DataStore) (DataStore, error)
}
