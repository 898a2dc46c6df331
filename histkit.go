// Package histkit splits multi-dimensional histograms into time- or
// category-indexed tables.
//
// A histogram registered under a colon-delimited feature name such as
// "time:x:y" is divided along its first axis: one reduced histogram per
// "time" bin, collected into an indexed table for the remaining-axis group
// "x:y". The resulting tables feed downstream comparison and statistics
// stages.
//
// # Packages
//
//   - hist: histogram value types and the single-axis projection primitive
//   - split: the splitting driver, a pipeline.Module
//   - table: the indexed tabular output
//   - pipeline: the data store and feature-selection collaborators
//   - snapshot: binary serialization of split results
//   - compress: payload codecs used by snapshot
//
// # Basic Usage
//
//	splitter, err := histkit.NewSplitter("hists", "split_hists")
//	if err != nil {
//	    return err
//	}
//
//	ds := pipeline.DataStore{"hists": histograms}
//	ds, err = splitter.Transform(ds)
//
//	groups := ds["split_hists"].(map[string]*table.Table)
//
// Snapshot the result for transport between stages:
//
//	encoder, _ := snapshot.NewEncoder()
//	data, err := encoder.Encode(groups)
package histkit

import (
	"github.com/histkit/histkit/internal/hash"
	"github.com/histkit/histkit/split"
)

// FeatureID computes the stable 64-bit identifier of a feature or group
// name, as used in snapshot index entries.
func FeatureID(name string) uint64 {
	return hash.ID(name)
}

// NewSplitter creates a histogram splitter with the given store keys.
// See split.New for options and defaults.
func NewSplitter(readKey, storeKey string, opts ...split.Option) (*split.Splitter, error) {
	return split.New(readKey, storeKey, opts...)
}
