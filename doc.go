// Package streamvbyte64 implements Lemire's streamvbyte integer codec: dense
// runs of unsigned integers are split into a one-byte-per-group tag stream
// and a concatenated data stream of variable-length payloads.
//
// Three parameterizations are provided, each an incompatible wire format:
//
//   - Coder1234 packs 32-bit values into 1, 2, 3, or 4 bytes.
//   - Coder0124 packs 32-bit values into 0, 1, 2, or 4 bytes (a zero value
//     tag means the value is literally zero and consumes no data bytes).
//   - Coder1248 packs 64-bit values into 1, 2, 4, or 8 bytes.
//
// Every coder also supports delta coding, where the values serialized are
// first-differences (wrapping) against a caller-supplied initial anchor,
// which compresses well for monotonically non-decreasing sequences such as
// sorted integer IDs or timestamps.
//
// All operations are synchronous and borrow caller-owned buffers for the
// duration of the call; the hot per-group path allocates nothing, though
// decoding a trailing partial group of 8 tags and the streaming writer
// helpers use a small fixed-size scratch buffer. A coder value is immutable
// after construction and may be shared and copied freely across goroutines.
//
// References:
//   - Lemire, Kurz & Rupp, "Stream VByte: Faster Byte-Oriented Integer
//     Compression" (the streamvbyte format).
//   - https://github.com/mccullocht/streamvbyte64 (the Rust implementation
//     this package ports).
package streamvbyte64
