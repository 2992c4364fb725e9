package streamvbyte64

import "io"

// chunkElems is the number of values pushed through the writer buffer per
// iteration (8 tag bytes' worth), matching the chunking in
// original_source/src/lib.rs's encode_to_writer/encode_deltas_to_writer.
const chunkElems = 32

// encodeToWriter pushes values through buf in bounded chunks, writing each
// chunk's data bytes to w as soon as they're encoded so callers don't need
// to size a data buffer for the whole stream up front. tags must still be
// sized for the whole stream: one byte is produced per group regardless of
// chunking.
func (c *codec[E]) encodeToWriter(w io.Writer, values []E, tags []byte) (int, error) {
	requireMultipleOfFour(len(values))
	buf := make([]byte, chunkElems*c.desc.elemWidth)
	written := 0
	for off := 0; off < len(values); off += chunkElems {
		end := off + chunkElems
		if end > len(values) {
			end = len(values)
		}
		chunkValues := values[off:end]
		nGroups := len(chunkValues) / 4
		chunkTags := tags[off/4 : off/4+nGroups]
		n := c.encode(chunkValues, chunkTags, buf)
		if _, err := w.Write(buf[:n]); err != nil {
			return written, err
		}
		written += n
	}
	return written, nil
}

func (c *codec[E]) encodeDeltasToWriter(w io.Writer, initial E, values []E, tags []byte) (int, error) {
	requireMultipleOfFour(len(values))
	buf := make([]byte, chunkElems*c.desc.elemWidth)
	written := 0
	base := initial
	for off := 0; off < len(values); off += chunkElems {
		end := off + chunkElems
		if end > len(values) {
			end = len(values)
		}
		chunkValues := values[off:end]
		nGroups := len(chunkValues) / 4
		chunkTags := tags[off/4 : off/4+nGroups]
		n := c.encodeDeltas(base, chunkValues, chunkTags, buf)
		if _, err := w.Write(buf[:n]); err != nil {
			return written, err
		}
		written += n
		base = chunkValues[len(chunkValues)-1]
	}
	return written, nil
}

// EncodeToWriter is a streaming convenience wrapper around Encode: it avoids
// requiring the caller to size a worst-case data buffer for the whole input,
// at the cost of chunked Write calls to w.
func (c Coder1234) EncodeToWriter(w io.Writer, values []uint32, tags []byte) (int, error) {
	return c.c.encodeToWriter(w, values, tags)
}

// EncodeDeltasToWriter is the delta-coding counterpart of EncodeToWriter.
func (c Coder1234) EncodeDeltasToWriter(w io.Writer, initial uint32, values []uint32, tags []byte) (int, error) {
	return c.c.encodeDeltasToWriter(w, initial, values, tags)
}

// EncodeToWriter is a streaming convenience wrapper around Encode.
func (c Coder0124) EncodeToWriter(w io.Writer, values []uint32, tags []byte) (int, error) {
	return c.c.encodeToWriter(w, values, tags)
}

// EncodeDeltasToWriter is the delta-coding counterpart of EncodeToWriter.
func (c Coder0124) EncodeDeltasToWriter(w io.Writer, initial uint32, values []uint32, tags []byte) (int, error) {
	return c.c.encodeDeltasToWriter(w, initial, values, tags)
}

// EncodeToWriter is a streaming convenience wrapper around Encode.
func (c Coder1248) EncodeToWriter(w io.Writer, values []uint64, tags []byte) (int, error) {
	return c.c.encodeToWriter(w, values, tags)
}

// EncodeDeltasToWriter is the delta-coding counterpart of EncodeToWriter.
func (c Coder1248) EncodeDeltasToWriter(w io.Writer, initial uint64, values []uint64, tags []byte) (int, error) {
	return c.c.encodeDeltasToWriter(w, initial, values, tags)
}
