package hist

import (
	"strconv"
	"time"
)

// BinKind identifies the value domain of a BinValue.
type BinKind uint8

const (
	KindNumber BinKind = iota + 1 // KindNumber is a numeric bin boundary.
	KindLabel                     // KindLabel is a categorical bin label.
	KindTime                      // KindTime is a nanosecond-epoch timestamp.
)

// BinValue is the key under which a sub-histogram is emitted by a split: the
// lower edge of a numeric bin, a category label, or a timestamp for temporal
// axes. BinValue is comparable, so it can key maps and index output tables.
type BinValue struct {
	Kind   BinKind
	Num    float64
	Label  string
	TimeNs int64
}

// Number returns a numeric BinValue.
func Number(v float64) BinValue {
	return BinValue{Kind: KindNumber, Num: v}
}

// Label returns a categorical BinValue.
func Label(s string) BinValue {
	return BinValue{Kind: KindLabel, Label: s}
}

// Timestamp returns a temporal BinValue for the given instant.
func Timestamp(t time.Time) BinValue {
	return BinValue{Kind: KindTime, TimeNs: t.UnixNano()}
}

// Time returns the instant of a KindTime value. It is the zero time for other
// kinds.
func (v BinValue) Time() time.Time {
	if v.Kind != KindTime {
		return time.Time{}
	}

	return time.Unix(0, v.TimeNs).UTC()
}

func (v BinValue) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case KindLabel:
		return v.Label
	case KindTime:
		return v.Time().Format(time.RFC3339Nano)
	default:
		return "invalid"
	}
}
