// Package errs defines the sentinel errors shared across histkit packages.
//
// Callers can match these with errors.Is after unwrapping, e.g.:
//
//	if errors.Is(err, errs.ErrConflictingOptions) { ... }
package errs

import "errors"

var (
	// ErrConflictingOptions indicates a splitter was constructed with options
	// that cannot be combined, such as flattened output with short keys.
	ErrConflictingOptions = errors.New("conflicting options")

	// ErrInvalidOption indicates a single option carries an unusable value,
	// such as an empty column name.
	ErrInvalidOption = errors.New("invalid option value")

	// ErrKeyNotFound indicates a requested key is absent from the data store.
	ErrKeyNotFound = errors.New("key not found in data store")

	// ErrWrongKeyType indicates a data store key holds a value of an
	// unexpected type.
	ErrWrongKeyType = errors.New("unexpected type for data store key")

	// ErrNotSplittable indicates a histogram with fewer than two axes was
	// passed to the single-axis projection primitive.
	ErrNotSplittable = errors.New("histogram has fewer than two dimensions")

	// ErrAxisMismatch indicates a histogram's axes and counts disagree, or a
	// feature name encodes a different number of axes than its histogram has.
	ErrAxisMismatch = errors.New("axis layout mismatch")

	// ErrInvalidSnapshot indicates snapshot data is truncated, corrupted, or
	// not a histkit snapshot.
	ErrInvalidSnapshot = errors.New("invalid snapshot data")
)
