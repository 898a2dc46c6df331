package table

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/histkit/histkit/hist"
)

func TestTable(t *testing.T) {
	sub := hist.MustNew(hist.NewAxis("x", []float64{0, 1, 2}))
	rows := []Row{
		{Index: hist.Number(0), Hist: hist.NewContainer(sub)},
		{Index: hist.Number(10), Hist: hist.NewContainer(sub)},
		{Index: hist.Number(20), Hist: hist.NewContainer(sub)},
	}

	tbl := New("date", "histogram", rows)

	require.Equal(t, "date", tbl.IndexCol())
	require.Equal(t, "histogram", tbl.HistCol())
	require.Equal(t, 3, tbl.Len())

	t.Run("preserves row order", func(t *testing.T) {
		index := tbl.Index()
		require.Equal(t, []hist.BinValue{
			hist.Number(0), hist.Number(10), hist.Number(20),
		}, index)
		require.Equal(t, rows[1], tbl.Row(1))
	})

	t.Run("rows share payload containers", func(t *testing.T) {
		require.Same(t, sub, tbl.Row(0).Hist.Histogram())
	})

	t.Run("empty table", func(t *testing.T) {
		empty := New("date", "histogram", nil)
		require.Zero(t, empty.Len())
		require.Empty(t, empty.Index())
	})
}
