package hist

import (
	"fmt"

	"github.com/histkit/histkit/errs"
)

// Histogram is an N-dimensional count structure over an ordered list of
// axes. Counts are stored row-major with axis 0 varying slowest, so the
// counts conditioned on one bin of axis 0 form a contiguous block.
//
// Histograms are not safe for concurrent mutation; splitting never mutates
// its input.
type Histogram struct {
	axes   []Axis
	counts []float64
}

// New creates a Histogram over the given axes with all counts zero.
// At least one axis is required and every axis must have at least zero bins
// declared through edges or labels.
func New(axes ...Axis) (*Histogram, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("%w: histogram needs at least one axis", errs.ErrAxisMismatch)
	}

	size := 1
	for _, a := range axes {
		size *= a.Bins()
	}

	return &Histogram{
		axes:   axes,
		counts: make([]float64, size),
	}, nil
}

// NewWithCounts creates a Histogram over the given axes with a pre-built
// row-major count array, e.g. when decoding a snapshot. The counts slice is
// owned by the histogram after the call.
func NewWithCounts(axes []Axis, counts []float64) (*Histogram, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("%w: histogram needs at least one axis", errs.ErrAxisMismatch)
	}

	size := 1
	for _, a := range axes {
		size *= a.Bins()
	}
	if size != len(counts) {
		return nil, fmt.Errorf("%w: axes describe %d bins, got %d counts", errs.ErrAxisMismatch, size, len(counts))
	}

	return &Histogram{axes: axes, counts: counts}, nil
}

// MustNew is New for statically known-good axes; it panics on error.
// Intended for tests and examples.
func MustNew(axes ...Axis) *Histogram {
	h, err := New(axes...)
	if err != nil {
		panic(err)
	}

	return h
}

// NDim returns the histogram's dimensionality.
func (h *Histogram) NDim() int {
	return len(h.axes)
}

// Axes returns the ordered axis list. The slice is shared; callers must not
// modify it.
func (h *Histogram) Axes() []Axis {
	return h.axes
}

// Axis returns the i-th axis.
func (h *Histogram) Axis(i int) Axis {
	return h.axes[i]
}

// Fill adds weight to the bin addressed by one bin index per axis.
func (h *Histogram) Fill(weight float64, bins ...int) error {
	idx, err := h.offset(bins)
	if err != nil {
		return err
	}
	h.counts[idx] += weight

	return nil
}

// At returns the count of the bin addressed by one bin index per axis.
func (h *Histogram) At(bins ...int) (float64, error) {
	idx, err := h.offset(bins)
	if err != nil {
		return 0, err
	}

	return h.counts[idx], nil
}

// EntryCount returns the total weight across all bins.
func (h *Histogram) EntryCount() float64 {
	var sum float64
	for _, c := range h.counts {
		sum += c
	}

	return sum
}

// Empty reports whether the histogram holds no entries.
func (h *Histogram) Empty() bool {
	return h.EntryCount() == 0
}

// Equal reports whether two histograms have identical axes and counts.
func (h *Histogram) Equal(other *Histogram) bool {
	if h == nil || other == nil {
		return h == other
	}
	if len(h.axes) != len(other.axes) || len(h.counts) != len(other.counts) {
		return false
	}
	for i, a := range h.axes {
		if !a.equal(other.axes[i]) {
			return false
		}
	}
	for i, c := range h.counts {
		if other.counts[i] != c {
			return false
		}
	}

	return true
}

// Counts returns the raw row-major count array. The slice is shared; callers
// must not modify it.
func (h *Histogram) Counts() []float64 {
	return h.counts
}

// offset converts per-axis bin indices into a flat counts index.
func (h *Histogram) offset(bins []int) (int, error) {
	if len(bins) != len(h.axes) {
		return 0, fmt.Errorf("%w: got %d bin indices for %d axes", errs.ErrAxisMismatch, len(bins), len(h.axes))
	}

	idx := 0
	for i, b := range bins {
		n := h.axes[i].Bins()
		if b < 0 || b >= n {
			return 0, fmt.Errorf("%w: bin %d out of range for axis %q (%d bins)", errs.ErrAxisMismatch, b, h.axes[i].Name, n)
		}
		idx = idx*n + b
	}

	return idx, nil
}

// firstAxisStride returns the counts block size per bin of axis 0.
func (h *Histogram) firstAxisStride() int {
	stride := 1
	for _, a := range h.axes[1:] {
		stride *= a.Bins()
	}

	return stride
}
