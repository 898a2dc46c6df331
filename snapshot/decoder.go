package snapshot

import (
	"fmt"

	"github.com/histkit/histkit/compress"
	"github.com/histkit/histkit/endian"
	"github.com/histkit/histkit/errs"
	"github.com/histkit/histkit/format"
	"github.com/histkit/histkit/internal/hash"
	"github.com/histkit/histkit/table"
)

// Decode restores the {group name -> table} mapping from snapshot bytes.
//
// The snapshot's own header selects byte order and compression, so Decode
// needs no configuration. Name hashes in the index are verified against the
// decoded group names.
func Decode(data []byte) (map[string]*table.Table, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", errs.ErrInvalidSnapshot, len(data))
	}

	engine := endian.GetLittleEndianEngine()
	if data[posFlag]&flagBigEndian != 0 {
		engine = endian.GetBigEndianEngine()
	}

	if engine.Uint32(data[posMagic:]) != Magic {
		return nil, fmt.Errorf("%w: bad magic", errs.ErrInvalidSnapshot)
	}
	if data[posVersion] != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidSnapshot, data[posVersion])
	}

	codec, err := compress.GetCodec(format.CompressionType(data[posCompression]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidSnapshot, err)
	}

	groupCount := int(engine.Uint32(data[posGroupCount:]))
	payloadSize := int(engine.Uint32(data[posPayloadSize:]))

	indexEnd := headerSize + groupCount*indexEntrySize
	if len(data) != indexEnd+payloadSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", errs.ErrInvalidSnapshot, indexEnd+payloadSize, len(data))
	}

	entries := make([]indexEntry, groupCount)
	for i := range entries {
		base := headerSize + i*indexEntrySize
		entries[i] = indexEntry{
			nameID: engine.Uint64(data[base:]),
			offset: engine.Uint32(data[base+8:]),
			size:   engine.Uint32(data[base+12:]),
		}
	}

	payload, err := codec.Decompress(data[indexEnd:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidSnapshot, err)
	}

	groups := make(map[string]*table.Table, groupCount)
	for _, entry := range entries {
		end := int(entry.offset) + int(entry.size)
		if end > len(payload) {
			return nil, fmt.Errorf("%w: group extends past payload", errs.ErrInvalidSnapshot)
		}

		r := &reader{engine: engine, data: payload[entry.offset:end]}
		name, tbl, err := r.group()
		if err != nil {
			return nil, err
		}
		if hash.ID(name) != entry.nameID {
			return nil, fmt.Errorf("%w: name hash mismatch for group %q", errs.ErrInvalidSnapshot, name)
		}

		groups[name] = tbl
	}

	return groups, nil
}
