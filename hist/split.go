package hist

import (
	"fmt"

	"github.com/histkit/histkit/errs"
)

// SplitConfig controls how SplitAlongFirstAxis emits its results. The
// numeric reduction itself is unaffected; the flags shape keys and filtering.
type SplitConfig struct {
	// ShortKeys emits each sub-histogram under its bare bin value. When
	// false the key is rendered as "yname[xname=value]".
	ShortKeys bool

	// ConvertTimeIndex reinterprets numeric axis-0 bin edges as
	// nanosecond-epoch timestamps. Temporal axes convert regardless.
	ConvertTimeIndex bool

	// XName and YName label the split axis and the remaining axes for long
	// key construction. They do not participate in the reduction.
	XName string
	YName string

	// FilterEmpty drops sub-histograms whose total entry count is zero.
	FilterEmpty bool
}

// SplitItem is one entry of a split result: the axis-0 bin key and the
// reduced histogram over the remaining axes.
type SplitItem struct {
	Key  BinValue
	Hist *Histogram
}

// SplitAlongFirstAxis reduces h by one dimension: for each bin of axis 0 it
// emits the histogram obtained by fixing axis 0 to that bin and retaining
// axes 1..N-1 in original order. Items are emitted in the axis's natural bin
// order; empty filtering, when enabled, is applied last.
//
// An empty result is valid: it means every bin was empty or the axis has no
// bins. Histograms with fewer than two dimensions cannot be split; callers
// are expected to check dimensionality first, and violation returns
// errs.ErrNotSplittable.
func SplitAlongFirstAxis(h *Histogram, cfg SplitConfig) ([]SplitItem, error) {
	if h.NDim() < 2 {
		return nil, fmt.Errorf("%w: got %d dimensions", errs.ErrNotSplittable, h.NDim())
	}

	axis := h.axes[0]
	rest := h.axes[1:]
	stride := h.firstAxisStride()

	items := make([]SplitItem, 0, axis.Bins())
	for i := range axis.Bins() {
		sub := &Histogram{
			axes:   rest,
			counts: append([]float64(nil), h.counts[i*stride:(i+1)*stride]...),
		}
		if cfg.FilterEmpty && sub.Empty() {
			continue
		}

		key := axis.binValue(i, cfg.ConvertTimeIndex)
		if !cfg.ShortKeys {
			key = Label(fmt.Sprintf("%s[%s=%s]", cfg.YName, cfg.XName, key.String()))
		}

		items = append(items, SplitItem{Key: key, Hist: sub})
	}

	return items, nil
}
