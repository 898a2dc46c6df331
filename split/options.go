package split

import (
	"fmt"

	"github.com/histkit/histkit/errs"
	"github.com/histkit/histkit/internal/options"
)

// WithFeatures restricts the pass to an explicit inclusion list; its order
// is kept.
func WithFeatures(features ...string) Option {
	return options.NoError(func(s *Splitter) {
		s.filter.Features = features
	})
}

// WithIgnoreFeatures excludes the given features from the pass.
func WithIgnoreFeatures(features ...string) Option {
	return options.NoError(func(s *Splitter) {
		s.filter.Ignore = features
	})
}

// WithFeatureBeginsWith requires candidate feature names to start with the
// given prefix.
func WithFeatureBeginsWith(prefix string) Option {
	return options.NoError(func(s *Splitter) {
		s.filter.BeginsWith = prefix
	})
}

// WithProjectOnAxes sets the pass-through flag telling cooperating stages to
// further project sub-histograms on their individual axes. Enabled by
// default.
func WithProjectOnAxes(enabled bool) Option {
	return options.NoError(func(s *Splitter) {
		s.projectOnAxes = enabled
	})
}

// WithFlattenOutput merges all groups into one flat bin-to-histogram mapping
// instead of per-group tables. Requires short keys to be disabled.
func WithFlattenOutput(enabled bool) Option {
	return options.NoError(func(s *Splitter) {
		s.flattenOutput = enabled
	})
}

// WithShortKeys controls record key verbosity: bare bin values when enabled
// (the default), "yname[xname=value]" otherwise.
func WithShortKeys(enabled bool) Option {
	return options.NoError(func(s *Splitter) {
		s.shortKeys = enabled
	})
}

// WithVarTimestamp force-treats the named axes as temporal even when their
// axis kind is not.
func WithVarTimestamp(names ...string) Option {
	return options.NoError(func(s *Splitter) {
		s.varTimestamp = names
	})
}

// WithIndexCol sets the index field name of the output tables. Default
// "date".
func WithIndexCol(name string) Option {
	return options.New(func(s *Splitter) error {
		if name == "" {
			return fmt.Errorf("%w: index column name cannot be empty", errs.ErrInvalidOption)
		}
		s.indexCol = name

		return nil
	})
}

// WithHistCol sets the payload field name of the output tables. Default
// "histogram".
func WithHistCol(name string) Option {
	return options.New(func(s *Splitter) error {
		if name == "" {
			return fmt.Errorf("%w: histogram column name cannot be empty", errs.ErrInvalidOption)
		}
		s.histCol = name

		return nil
	})
}

// WithFilterEmptySplitHists controls dropping of empty sub-histograms after
// splitting. Enabled by default.
func WithFilterEmptySplitHists(enabled bool) Option {
	return options.NoError(func(s *Splitter) {
		s.filterEmpty = enabled
	})
}
