// Package hist provides histkit's multi-dimensional histogram value types and
// the single-axis projection primitive.
//
// A Histogram is an N-dimensional count structure over an ordered list of
// axes. Axis order is significant: it matches the colon-delimited feature
// name under which the histogram is registered, e.g. "time:x:y" names a
// 3-dimensional histogram whose first axis is "time".
//
// # Building Histograms
//
//	h, err := hist.New(
//	    hist.NewTimeAxis("time", edges),
//	    hist.NewAxis("x", []float64{0, 1, 2, 3}),
//	)
//	h.Fill(1.0, 0, 2) // add weight 1 to time bin 0, x bin 2
//
// # Splitting
//
// SplitAlongFirstAxis reduces an N-dimensional histogram by one dimension:
// for each bin of axis 0 it produces the (N-1)-dimensional histogram over the
// remaining axes, keyed by the bin's value. Temporal first axes yield
// timestamp keys. Container wraps a Histogram with the derived metadata the
// splitter driver needs (dimensionality, temporal first axis).
package hist
