package hist

// Container wraps a single named histogram with the metadata derived from
// its axes: dimensionality and whether its first axis is temporal. The
// splitter driver creates one per candidate feature at the start of each
// pass; containers are not retained beyond the transform call.
type Container struct {
	hist *Histogram
}

// NewContainer wraps h.
func NewContainer(h *Histogram) *Container {
	return &Container{hist: h}
}

// Histogram returns the wrapped histogram.
func (c *Container) Histogram() *Histogram {
	return c.hist
}

// NDim returns the wrapped histogram's dimensionality.
func (c *Container) NDim() int {
	return c.hist.NDim()
}

// IsTime reports whether the first axis is temporal.
func (c *Container) IsTime() bool {
	return c.hist.NDim() > 0 && c.hist.Axis(0).IsTime()
}

// EntryCount returns the wrapped histogram's total weight.
func (c *Container) EntryCount() float64 {
	return c.hist.EntryCount()
}

// SplitAlongFirstAxis projects the wrapped histogram along its first axis.
// See the package-level SplitAlongFirstAxis for the contract.
func (c *Container) SplitAlongFirstAxis(cfg SplitConfig) ([]SplitItem, error) {
	return SplitAlongFirstAxis(c.hist, cfg)
}
