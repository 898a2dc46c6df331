package hist

// AxisKind identifies how an axis partitions its domain.
type AxisKind uint8

const (
	AxisNumeric  AxisKind = iota + 1 // AxisNumeric bins a continuous range by edges.
	AxisTime                         // AxisTime bins nanosecond-epoch timestamps by edges.
	AxisCategory                     // AxisCategory bins by discrete labels.
)

// Axis describes one dimension of a Histogram: a name plus an ordered
// sequence of bin boundaries (numeric and time axes) or labels (category
// axes). Edges hold one more element than the number of bins; the i-th bin
// covers [Edges[i], Edges[i+1]).
type Axis struct {
	Name   string
	Kind   AxisKind
	Edges  []float64
	Labels []string
}

// NewAxis returns a numeric axis with the given bin edges.
func NewAxis(name string, edges []float64) Axis {
	return Axis{Name: name, Kind: AxisNumeric, Edges: edges}
}

// NewTimeAxis returns a temporal axis whose edges are nanoseconds since the
// Unix epoch.
func NewTimeAxis(name string, edges []float64) Axis {
	return Axis{Name: name, Kind: AxisTime, Edges: edges}
}

// NewCategoryAxis returns a categorical axis with the given ordered labels.
func NewCategoryAxis(name string, labels []string) Axis {
	return Axis{Name: name, Kind: AxisCategory, Labels: labels}
}

// Bins returns the number of bins along the axis.
func (a Axis) Bins() int {
	if a.Kind == AxisCategory {
		return len(a.Labels)
	}
	if len(a.Edges) < 2 {
		return 0
	}

	return len(a.Edges) - 1
}

// IsTime reports whether the axis is temporal.
func (a Axis) IsTime() bool {
	return a.Kind == AxisTime
}

// binValue returns the key for bin i: the label for category axes, otherwise
// the bin's lower edge, reinterpreted as a nanosecond-epoch timestamp when
// convertTime is set.
func (a Axis) binValue(i int, convertTime bool) BinValue {
	if a.Kind == AxisCategory {
		return Label(a.Labels[i])
	}

	edge := a.Edges[i]
	if convertTime {
		return BinValue{Kind: KindTime, TimeNs: int64(edge)}
	}

	return Number(edge)
}

func (a Axis) equal(b Axis) bool {
	if a.Name != b.Name || a.Kind != b.Kind || len(a.Edges) != len(b.Edges) || len(a.Labels) != len(b.Labels) {
		return false
	}
	for i, e := range a.Edges {
		if b.Edges[i] != e {
			return false
		}
	}
	for i, l := range a.Labels {
		if b.Labels[i] != l {
			return false
		}
	}

	return true
}
