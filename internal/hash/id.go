// Package hash derives stable 64-bit identifiers from feature and group
// names. Snapshot index entries store these instead of raw strings so that
// lookups and integrity checks work on fixed-size values.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
