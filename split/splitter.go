// Package split implements the histogram splitting driver.
//
// A Splitter divides each candidate multi-dimensional histogram along its
// first axis, e.g. "time:x:y" along "time", and reshapes the results into
// one indexed table per remaining-axis group ("x:y"), written back to the
// pipeline data store. Splitting a feature is all-or-nothing per candidate:
// degenerate or inconsistent candidates are skipped with a logged reason and
// never abort the pass.
//
//	splitter, err := split.New("hists", "split_hists",
//	    split.WithFeatureBeginsWith("time:"),
//	)
//	ds, err = splitter.Transform(ds)
package split

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/histkit/histkit/errs"
	"github.com/histkit/histkit/hist"
	"github.com/histkit/histkit/internal/logging"
	"github.com/histkit/histkit/internal/options"
	"github.com/histkit/histkit/pipeline"
	"github.com/histkit/histkit/table"
)

var logger = logging.New("split")

// Default output column names.
const (
	DefaultIndexCol = "date"
	DefaultHistCol  = "histogram"
)

// Splitter divides histograms along their first axis. Construct with New;
// the zero value is not usable. A Splitter holds no per-pass state, so a
// single instance can run Transform repeatedly, but two concurrent calls
// writing the same store key require external serialization.
type Splitter struct {
	readKey  string
	storeKey string

	filter        pipeline.FeatureFilter
	projectOnAxes bool
	flattenOutput bool
	shortKeys     bool
	varTimestamp  []string
	indexCol      string
	histCol       string
	filterEmpty   bool
}

var _ pipeline.Module = (*Splitter)(nil)

// Option configures a Splitter.
type Option = options.Option[*Splitter]

// New creates a Splitter that reads the feature-to-histogram mapping at
// readKey and writes the split tables to storeKey.
//
// Defaults: short keys, empty sub-histograms filtered, index column "date",
// payload column "histogram", projection on remaining axes enabled.
//
// Flattened output and short keys are mutually exclusive; requesting both
// fails here, before any processing.
func New(readKey, storeKey string, opts ...Option) (*Splitter, error) {
	s := &Splitter{
		readKey:       readKey,
		storeKey:      storeKey,
		projectOnAxes: true,
		shortKeys:     true,
		filterEmpty:   true,
		indexCol:      DefaultIndexCol,
		histCol:       DefaultHistCol,
	}

	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	if s.flattenOutput && s.shortKeys {
		return nil, fmt.Errorf("%w: flattened output requires short keys to be disabled", errs.ErrConflictingOptions)
	}

	return s, nil
}

// ReadKey returns the data store key the splitter reads from.
func (s *Splitter) ReadKey() string {
	return s.readKey
}

// StoreKey returns the data store key the splitter writes to.
func (s *Splitter) StoreKey() string {
	return s.storeKey
}

// ProjectOnAxes reports whether cooperating stages should further project
// the produced sub-histograms on their individual axes. The splitter itself
// performs exactly one axis reduction; this flag is pass-through.
func (s *Splitter) ProjectOnAxes() bool {
	return s.projectOnAxes
}

// Transform resolves the candidate features at the read key, splits each
// along its first axis, and writes the result to the store key: a
// map[string]*table.Table keyed by remaining-axis group, or in flattened
// mode a single map[hist.BinValue]*hist.Histogram.
func (s *Splitter) Transform(ds pipeline.DataStore) (pipeline.DataStore, error) {
	logger.Info("splitting histograms",
		zap.String("readKey", s.readKey),
		zap.String("storeKey", s.storeKey))

	data, err := pipeline.Get[map[string]*hist.Histogram](ds, s.readKey)
	if err != nil {
		return ds, err
	}

	available := make([]string, 0, len(data))
	for name := range data {
		available = append(available, name)
	}
	features := pipeline.SelectFeatures(available, s.filter)

	acc := newAccumulator()
	for _, feature := range features {
		logger.Debug("splitting histogram", zap.String("feature", feature))
		s.splitFeature(feature, data[feature], acc)
	}

	if s.flattenOutput {
		ds[s.storeKey] = acc.flat
	} else {
		divided := make(map[string]*table.Table, len(acc.order))
		for _, name := range acc.order {
			divided[name] = table.New(s.indexCol, s.histCol, acc.groups[name])
		}
		ds[s.storeKey] = divided
	}

	return ds, nil
}

// splitFeature runs the guard checks and projection for one candidate and
// merges the result into the accumulator.
func (s *Splitter) splitFeature(feature string, h *hist.Histogram, acc *accumulator) Outcome {
	hc := hist.NewContainer(h)
	if hc.NDim() <= 1 {
		logger.Debug("histogram does not have two or more dimensions, nothing to split",
			zap.String("feature", feature))
		return SkippedNotSplittable
	}

	cols := strings.Split(feature, ":")
	if len(cols) != hc.NDim() {
		logger.Error("histogram dimension not consistent with feature name",
			zap.String("feature", feature),
			zap.Int("ndim", hc.NDim()),
			zap.Int("axes", len(cols)))
		return SkippedInconsistent
	}

	// "time:x:y" -> "time", "x:y"
	xname, yname := cols[0], strings.Join(cols[1:], ":")
	if acc.seen[yname] {
		logger.Debug("group already divided", zap.String("group", yname))
		return SkippedDuplicate
	}

	isTS := hc.IsTime() || slices.Contains(s.varTimestamp, xname)
	items, err := hc.SplitAlongFirstAxis(hist.SplitConfig{
		ShortKeys:        s.shortKeys,
		ConvertTimeIndex: isTS,
		XName:            xname,
		YName:            yname,
		FilterEmpty:      s.filterEmpty,
	})
	if err != nil {
		// dimensionality is guarded above, so this is malformed input
		logger.Error("splitting histogram failed",
			zap.String("feature", feature), zap.Error(err))
		return SkippedInconsistent
	}
	if len(items) == 0 {
		logger.Warn("split histogram is empty", zap.String("group", yname))
		return SkippedEmpty
	}

	acc.merge(yname, items, s.flattenOutput)

	return Processed
}

// accumulator collects per-group rows (nested mode) or a single flat
// bin-to-histogram mapping (flattened mode) over one transform pass. It is
// local to the pass and discarded after table construction.
type accumulator struct {
	seen   map[string]bool
	order  []string
	groups map[string][]table.Row
	flat   map[hist.BinValue]*hist.Histogram
}

func newAccumulator() *accumulator {
	return &accumulator{
		seen:   make(map[string]bool),
		groups: make(map[string][]table.Row),
		flat:   make(map[hist.BinValue]*hist.Histogram),
	}
}

// merge records the split result for yname. In flattened mode later
// collisions across groups are last-write-wins, since flattening discards
// the group key.
func (a *accumulator) merge(yname string, items []hist.SplitItem, flatten bool) {
	a.seen[yname] = true

	if flatten {
		for _, item := range items {
			a.flat[item.Key] = item.Hist
		}
		return
	}

	rows := make([]table.Row, len(items))
	for i, item := range items {
		rows[i] = table.Row{Index: item.Key, Hist: hist.NewContainer(item.Hist)}
	}
	a.groups[yname] = rows
	a.order = append(a.order, yname)
}
