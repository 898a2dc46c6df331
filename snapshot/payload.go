package snapshot

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/histkit/histkit/endian"
	"github.com/histkit/histkit/errs"
	"github.com/histkit/histkit/hist"
	"github.com/histkit/histkit/table"
)

// Group payload layout: name, index column name, payload column name, row
// count, then per row a bin value and a histogram. Strings are uvarint
// length-prefixed; floats are 64-bit IEEE in the snapshot's byte order.

func appendString(buf []byte, s string) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(s)))

	return append(buf, s...)
}

func appendFloat(engine endian.EndianEngine, buf []byte, f float64) []byte {
	return engine.AppendUint64(buf, math.Float64bits(f))
}

func appendBinValue(engine endian.EndianEngine, buf []byte, v hist.BinValue) []byte {
	buf = append(buf, byte(v.Kind))
	switch v.Kind {
	case hist.KindNumber:
		buf = appendFloat(engine, buf, v.Num)
	case hist.KindLabel:
		buf = appendString(buf, v.Label)
	case hist.KindTime:
		buf = engine.AppendUint64(buf, uint64(v.TimeNs))
	}

	return buf
}

func appendAxis(engine endian.EndianEngine, buf []byte, a hist.Axis) []byte {
	buf = append(buf, byte(a.Kind))
	buf = appendString(buf, a.Name)
	if a.Kind == hist.AxisCategory {
		buf = binary.AppendUvarint(buf, uint64(len(a.Labels)))
		for _, l := range a.Labels {
			buf = appendString(buf, l)
		}
		return buf
	}

	buf = binary.AppendUvarint(buf, uint64(len(a.Edges)))
	for _, e := range a.Edges {
		buf = appendFloat(engine, buf, e)
	}

	return buf
}

func appendHistogram(engine endian.EndianEngine, buf []byte, h *hist.Histogram) []byte {
	axes := h.Axes()
	buf = binary.AppendUvarint(buf, uint64(len(axes)))
	for _, a := range axes {
		buf = appendAxis(engine, buf, a)
	}

	counts := h.Counts()
	buf = binary.AppendUvarint(buf, uint64(len(counts)))
	for _, c := range counts {
		buf = appendFloat(engine, buf, c)
	}

	return buf
}

func appendGroup(engine endian.EndianEngine, buf []byte, name string, tbl *table.Table) []byte {
	buf = appendString(buf, name)
	buf = appendString(buf, tbl.IndexCol())
	buf = appendString(buf, tbl.HistCol())
	buf = binary.AppendUvarint(buf, uint64(tbl.Len()))
	for _, row := range tbl.Rows() {
		buf = appendBinValue(engine, buf, row.Index)
		buf = appendHistogram(engine, buf, row.Hist.Histogram())
	}

	return buf
}

// reader consumes a group payload sequentially.
type reader struct {
	engine endian.EndianEngine
	data   []byte
	pos    int
}

func (r *reader) fail(what string) error {
	return fmt.Errorf("%w: truncated %s at offset %d", errs.ErrInvalidSnapshot, what, r.pos)
}

func (r *reader) uvarint(what string) (uint64, error) {
	v, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, r.fail(what)
	}
	r.pos += n

	return v, nil
}

// length decodes an element count. Every counted element (byte, label, row,
// 8-byte float) occupies at least one payload byte, so any count above the
// remaining bytes is corrupt; rejecting it here keeps slice and make sizes
// sane further down.
func (r *reader) length(what string) (int, error) {
	v, err := r.uvarint(what)
	if err != nil {
		return 0, err
	}
	if remaining := uint64(len(r.data) - r.pos); v > remaining {
		return 0, fmt.Errorf("%w: %s length %d exceeds %d remaining bytes",
			errs.ErrInvalidSnapshot, what, v, remaining)
	}

	return int(v), nil
}

func (r *reader) str(what string) (string, error) {
	n, err := r.length(what)
	if err != nil {
		return "", err
	}
	s := string(r.data[r.pos : r.pos+n])
	r.pos += n

	return s, nil
}

func (r *reader) uint64(what string) (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, r.fail(what)
	}
	v := r.engine.Uint64(r.data[r.pos:])
	r.pos += 8

	return v, nil
}

func (r *reader) float(what string) (float64, error) {
	bits, err := r.uint64(what)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(bits), nil
}

func (r *reader) binValue() (hist.BinValue, error) {
	if r.pos >= len(r.data) {
		return hist.BinValue{}, r.fail("bin value")
	}
	kind := hist.BinKind(r.data[r.pos])
	r.pos++

	switch kind {
	case hist.KindNumber:
		num, err := r.float("bin value")
		return hist.BinValue{Kind: kind, Num: num}, err
	case hist.KindLabel:
		label, err := r.str("bin value")
		return hist.BinValue{Kind: kind, Label: label}, err
	case hist.KindTime:
		ns, err := r.uint64("bin value")
		return hist.BinValue{Kind: kind, TimeNs: int64(ns)}, err
	default:
		return hist.BinValue{}, fmt.Errorf("%w: unknown bin kind %d", errs.ErrInvalidSnapshot, kind)
	}
}

func (r *reader) axis() (hist.Axis, error) {
	if r.pos >= len(r.data) {
		return hist.Axis{}, r.fail("axis")
	}
	kind := hist.AxisKind(r.data[r.pos])
	r.pos++

	name, err := r.str("axis name")
	if err != nil {
		return hist.Axis{}, err
	}

	switch kind {
	case hist.AxisCategory:
		n, err := r.length("axis labels")
		if err != nil {
			return hist.Axis{}, err
		}
		labels := make([]string, n)
		for i := range labels {
			if labels[i], err = r.str("axis label"); err != nil {
				return hist.Axis{}, err
			}
		}
		return hist.NewCategoryAxis(name, labels), nil

	case hist.AxisNumeric, hist.AxisTime:
		n, err := r.length("axis edges")
		if err != nil {
			return hist.Axis{}, err
		}
		edges := make([]float64, n)
		for i := range edges {
			if edges[i], err = r.float("axis edge"); err != nil {
				return hist.Axis{}, err
			}
		}
		if kind == hist.AxisTime {
			return hist.NewTimeAxis(name, edges), nil
		}
		return hist.NewAxis(name, edges), nil

	default:
		return hist.Axis{}, fmt.Errorf("%w: unknown axis kind %d", errs.ErrInvalidSnapshot, kind)
	}
}

func (r *reader) histogram() (*hist.Histogram, error) {
	naxes, err := r.length("axis count")
	if err != nil {
		return nil, err
	}
	axes := make([]hist.Axis, naxes)
	for i := range axes {
		if axes[i], err = r.axis(); err != nil {
			return nil, err
		}
	}

	ncounts, err := r.length("count length")
	if err != nil {
		return nil, err
	}
	counts := make([]float64, ncounts)
	for i := range counts {
		if counts[i], err = r.float("count"); err != nil {
			return nil, err
		}
	}

	h, err := hist.NewWithCounts(axes, counts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidSnapshot, err)
	}

	return h, nil
}

func (r *reader) group() (string, *table.Table, error) {
	name, err := r.str("group name")
	if err != nil {
		return "", nil, err
	}
	indexCol, err := r.str("index column")
	if err != nil {
		return "", nil, err
	}
	histCol, err := r.str("histogram column")
	if err != nil {
		return "", nil, err
	}

	nrows, err := r.length("row count")
	if err != nil {
		return "", nil, err
	}
	rows := make([]table.Row, nrows)
	for i := range rows {
		index, err := r.binValue()
		if err != nil {
			return "", nil, err
		}
		h, err := r.histogram()
		if err != nil {
			return "", nil, err
		}
		rows[i] = table.Row{Index: index, Hist: hist.NewContainer(h)}
	}

	return name, table.New(indexCol, histCol, rows), nil
}
