// Package compress provides the compression codecs used for histkit snapshot
// payloads.
//
// A snapshot serializes split-histogram tables into a single payload blob;
// this package compresses that blob. Histogram payloads are repetitive (axis
// names, many zero counts), so even fast algorithms compress them well.
//
// Supported algorithms, selected via format.CompressionType:
//   - None: pass-through, for tiny snapshots or debugging
//   - Zstd: best ratio, the default for archival snapshots
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// All codecs are stateless values safe for concurrent use; pooled encoder
// and decoder state is managed internally.
package compress
