// Package snapshot serializes split-histogram results into a compact binary
// blob and restores them.
//
// A snapshot carries a complete {group name -> table} mapping as produced by
// the splitter: a fixed-size header, one index entry per group (xxHash64 of
// the group name plus the group's offset and length inside the payload), and
// the group payloads compressed as a single block.
//
// Snapshots are a transport format between pipeline stages; where the bytes
// end up is the caller's concern.
//
//	encoder, _ := snapshot.NewEncoder(snapshot.WithCompression(format.CompressionLZ4))
//	data, err := encoder.Encode(groups)
//	...
//	groups, err := snapshot.Decode(data)
package snapshot

// Layout constants. All multi-byte header and index fields use the byte
// order recorded in the header flag.
const (
	// Magic identifies a histkit snapshot ("HKSS").
	Magic uint32 = 0x484B5353

	// Version is the current snapshot format version.
	Version uint8 = 1

	headerSize     = 16
	indexEntrySize = 16

	flagBigEndian uint8 = 0x01
)

// Header byte offsets.
const (
	posMagic       = 0  // uint32
	posVersion     = 4  // uint8
	posFlag        = 5  // uint8
	posCompression = 6  // uint8, format.CompressionType
	posGroupCount  = 8  // uint32
	posPayloadSize = 12 // uint32, compressed payload length
)

// indexEntry locates one group inside the uncompressed payload.
type indexEntry struct {
	nameID uint64 // xxHash64 of the group name
	offset uint32
	size   uint32
}
