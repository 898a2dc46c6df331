package snapshot

import (
	"fmt"
	"maps"
	"slices"

	"github.com/histkit/histkit/compress"
	"github.com/histkit/histkit/endian"
	"github.com/histkit/histkit/format"
	"github.com/histkit/histkit/internal/hash"
	"github.com/histkit/histkit/internal/options"
	"github.com/histkit/histkit/table"
)

// Encoder serializes split-histogram group tables into snapshot bytes.
// A single Encoder is stateless and safe for concurrent Encode calls.
type Encoder struct {
	compression format.CompressionType
	engine      endian.EndianEngine
	bigEndian   bool
	codec       compress.Codec
}

// Option configures an Encoder.
type Option = options.Option[*Encoder]

// WithCompression selects the payload compression algorithm. Default Zstd.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(e *Encoder) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		e.compression = compression

		return nil
	})
}

// WithLittleEndian encodes multi-byte fields little-endian regardless of the
// host's byte order.
func WithLittleEndian() Option {
	return options.NoError(func(e *Encoder) {
		e.bigEndian = false
	})
}

// WithBigEndian encodes multi-byte fields big-endian, for interoperability
// with big-endian consumers.
func WithBigEndian() Option {
	return options.NoError(func(e *Encoder) {
		e.bigEndian = true
	})
}

// NewEncoder creates an Encoder. Defaults: Zstd compression, the host's
// native byte order. The byte order is recorded in the snapshot header, so
// decoding works across hosts either way.
func NewEncoder(opts ...Option) (*Encoder, error) {
	e := &Encoder{
		compression: format.CompressionZstd,
		bigEndian:   !endian.IsNativeLittleEndian(),
	}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	if e.bigEndian {
		e.engine = endian.GetBigEndianEngine()
	} else {
		e.engine = endian.GetLittleEndianEngine()
	}

	codec, err := compress.GetCodec(e.compression)
	if err != nil {
		return nil, err
	}
	e.codec = codec

	return e, nil
}

// Encode serializes groups into a snapshot. Groups are written in sorted
// name order, so identical inputs produce identical snapshots.
func (e *Encoder) Encode(groups map[string]*table.Table) ([]byte, error) {
	names := slices.Sorted(maps.Keys(groups))

	entries := make([]indexEntry, 0, len(names))
	var payload []byte
	for _, name := range names {
		start := len(payload)
		payload = appendGroup(e.engine, payload, name, groups[name])
		entries = append(entries, indexEntry{
			nameID: hash.ID(name),
			offset: uint32(start),
			size:   uint32(len(payload) - start),
		})
	}

	compressed, err := e.codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress snapshot payload: %w", err)
	}

	buf := make([]byte, 0, headerSize+len(entries)*indexEntrySize+len(compressed))
	buf = e.engine.AppendUint32(buf, Magic)
	buf = append(buf, Version)
	var flag uint8
	if e.bigEndian {
		flag |= flagBigEndian
	}
	buf = append(buf, flag, byte(e.compression), 0)
	buf = e.engine.AppendUint32(buf, uint32(len(names)))
	buf = e.engine.AppendUint32(buf, uint32(len(compressed)))

	for _, entry := range entries {
		buf = e.engine.AppendUint64(buf, entry.nameID)
		buf = e.engine.AppendUint32(buf, entry.offset)
		buf = e.engine.AppendUint32(buf, entry.size)
	}

	return append(buf, compressed...), nil
}
