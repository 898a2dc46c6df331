package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/histkit/histkit/endian"
	"github.com/histkit/histkit/errs"
	"github.com/histkit/histkit/format"
	"github.com/histkit/histkit/hist"
	"github.com/histkit/histkit/table"
)

func testGroups(t *testing.T) map[string]*table.Table {
	t.Helper()

	mk := func(axis string, weights ...float64) *hist.Container {
		h := hist.MustNew(hist.NewAxis(axis, []float64{0, 1, 2, 3}))
		for i, w := range weights {
			require.NoError(t, h.Fill(w, i))
		}
		return hist.NewContainer(h)
	}

	cat := hist.MustNew(hist.NewCategoryAxis("color", []string{"red", "green"}))
	require.NoError(t, cat.Fill(2, 1))

	return map[string]*table.Table{
		"x": table.New("date", "histogram", []table.Row{
			{Index: hist.Timestamp(time.Unix(0, 0)), Hist: mk("x", 1, 2)},
			{Index: hist.Timestamp(time.Unix(1, 0)), Hist: mk("x", 0, 0, 3)},
		}),
		"x:y": table.New("date", "histogram", []table.Row{
			{Index: hist.Number(0), Hist: mk("y", 5)},
		}),
		"color": table.New("ts", "hist", []table.Row{
			{Index: hist.Label("b[a=0]"), Hist: hist.NewContainer(cat)},
		}),
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	groups := testGroups(t)

	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, compression := range compressions {
		t.Run(compression.String(), func(t *testing.T) {
			encoder, err := NewEncoder(WithCompression(compression))
			require.NoError(t, err)

			data, err := encoder.Encode(groups)
			require.NoError(t, err)

			decoded, err := Decode(data)
			require.NoError(t, err)
			requireGroupsEqual(t, groups, decoded)
		})
	}
}

func TestSnapshot_BigEndian(t *testing.T) {
	groups := testGroups(t)

	encoder, err := NewEncoder(WithBigEndian(), WithCompression(format.CompressionS2))
	require.NoError(t, err)

	data, err := encoder.Encode(groups)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	requireGroupsEqual(t, groups, decoded)
}

func TestSnapshot_Deterministic(t *testing.T) {
	groups := testGroups(t)

	encoder, err := NewEncoder()
	require.NoError(t, err)

	a, err := encoder.Encode(groups)
	require.NoError(t, err)
	b, err := encoder.Encode(groups)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestSnapshot_EmptyGroups(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	data, err := encoder.Encode(nil)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestNewEncoder_NativeByteOrderDefault(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	data, err := encoder.Encode(nil)
	require.NoError(t, err)

	written := data[posFlag]&flagBigEndian != 0
	require.Equal(t, !endian.IsNativeLittleEndian(), written)
}

func TestNewEncoder_InvalidCompression(t *testing.T) {
	_, err := NewEncoder(WithCompression(format.CompressionType(0xff)))
	require.Error(t, err)
}

func TestDecode_Invalid(t *testing.T) {
	encoder, err := NewEncoder(WithCompression(format.CompressionNone))
	require.NoError(t, err)
	valid, err := encoder.Encode(testGroups(t))
	require.NoError(t, err)

	t.Run("too short", func(t *testing.T) {
		_, err := Decode(valid[:8])
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte(nil), valid...)
		bad[0] ^= 0xff
		_, err := Decode(bad)
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("bad version", func(t *testing.T) {
		bad := append([]byte(nil), valid...)
		bad[posVersion] = 0x7f
		_, err := Decode(bad)
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := Decode(valid[:len(valid)-4])
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("corrupted name hash", func(t *testing.T) {
		bad := append([]byte(nil), valid...)
		bad[headerSize] ^= 0xff // first index entry's nameID
		_, err := Decode(bad)
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("oversized name length", func(t *testing.T) {
		bad := append([]byte(nil), valid...)
		// The first group's payload begins with its uvarint name length;
		// replace it with 1<<63, far beyond the payload.
		payloadStart := headerSize + len(testGroups(t))*indexEntrySize
		copy(bad[payloadStart:], []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01})
		_, err := Decode(bad)
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("oversized count length", func(t *testing.T) {
		// Zero axes followed by a count length that dwarfs the remaining bytes.
		r := &reader{
			engine: endian.GetLittleEndianEngine(),
			data:   []byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01},
		}
		_, err := r.histogram()
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("oversized row count", func(t *testing.T) {
		var buf []byte
		buf = appendString(buf, "g")
		buf = appendString(buf, "date")
		buf = appendString(buf, "histogram")
		buf = append(buf, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01)
		r := &reader{engine: endian.GetLittleEndianEngine(), data: buf}
		_, _, err := r.group()
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})
}

func requireGroupsEqual(t *testing.T, want, got map[string]*table.Table) {
	t.Helper()

	require.Len(t, got, len(want))
	for name, wantTbl := range want {
		gotTbl, ok := got[name]
		require.True(t, ok, "missing group %q", name)
		require.Equal(t, wantTbl.IndexCol(), gotTbl.IndexCol())
		require.Equal(t, wantTbl.HistCol(), gotTbl.HistCol())
		require.Equal(t, wantTbl.Len(), gotTbl.Len())

		for i := range wantTbl.Len() {
			require.Equal(t, wantTbl.Row(i).Index, gotTbl.Row(i).Index)
			require.True(t, wantTbl.Row(i).Hist.Histogram().Equal(gotTbl.Row(i).Hist.Histogram()),
				"group %q row %d histogram mismatch", name, i)
		}
	}
}
