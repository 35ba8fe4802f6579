// This file contains the section decoder: reads the (crc, num_chunks,
// [chunk_size, chunk_bytes]*) framing common to every section, decompresses
// each chunk and concatenates the results into one payload.

package repparser

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/woozymasta/lzo"
)

// rawChunk is one length-prefixed chunk read directly off the wire, still
// compressed (or already raw).
type rawChunk struct {
	bytes []byte
}

// readChunks reads the (crc, num_chunks, [chunk_size, chunk_bytes]*)
// framing shared by every section and returns the raw, still-compressed
// chunk bytes in order. crc is discarded; it is never validated.
func readChunks(r *bytesReader) ([]rawChunk, error) {
	if _, err := r.u32("section crc"); err != nil {
		return nil, err
	}
	numChunks, err := r.u32("section num_chunks")
	if err != nil {
		return nil, err
	}

	chunks := make([]rawChunk, 0, numChunks)
	for i := uint32(0); i < numChunks; i++ {
		size, err := r.u32("chunk_size")
		if err != nil {
			return nil, err
		}
		data, err := r.take(int(size), "chunk_bytes")
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, rawChunk{bytes: data})
	}
	return chunks, nil
}

// decodeChunk runs one chunk through the decompression fallback chain:
// zlib, then (when expectedSize is known) LZO1X, then raw bytes. Failures
// at every step of this chain are swallowed on purpose: per the section
// decoder's contract, decompression never fails the overall parse.
func decodeChunk(raw []byte, expectedSize int) []byte {
	if out, err := zlibDecompress(raw); err == nil {
		return out
	}
	if expectedSize > 0 {
		if out, err := lzo.Decompress(raw, lzo.DefaultDecompressOptions(expectedSize)); err == nil {
			return out
		}
	}
	return raw
}

func zlibDecompress(raw []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// decodeSection reads a section's chunk framing and decompresses every
// chunk, concatenating the results in order. expectedSize, when positive,
// bounds the LZO1X fallback step (LZO requires a known output length);
// pass 0 when the decompressed size cannot be predicted ahead of time, as
// is the case for the multi-chunk frames section.
func decodeSection(r *bytesReader, expectedSize int) ([]byte, error) {
	chunks, err := readChunks(r)
	if err != nil {
		return nil, err
	}

	var out []byte
	for _, c := range chunks {
		out = append(out, decodeChunk(c.bytes, expectedSize)...)
	}
	return out, nil
}

// decodeSingleChunkSection behaves like decodeSection but requires the
// section to contain exactly one chunk, failing with ErrInvalidData
// otherwise. Used for the game-info section.
func decodeSingleChunkSection(r *bytesReader, expectedSize int) ([]byte, error) {
	start := r.pos
	if _, err := r.u32("section crc"); err != nil {
		return nil, err
	}
	numChunks, err := r.u32("section num_chunks")
	if err != nil {
		return nil, err
	}
	if numChunks != 1 {
		return nil, newInvalidDataError("game-info section must contain exactly one chunk")
	}
	r.pos = start

	return decodeSection(r, expectedSize)
}

// skipSection advances past a section without materializing its payload.
// Used for the unknown section between game-info and frames.
func skipSection(r *bytesReader) error {
	if _, err := r.u32("section crc"); err != nil {
		return err
	}
	numChunks, err := r.u32("section num_chunks")
	if err != nil {
		return err
	}
	for i := uint32(0); i < numChunks; i++ {
		size, err := r.u32("chunk_size")
		if err != nil {
			return err
		}
		if err := r.skip(int(size), "chunk_bytes"); err != nil {
			return err
		}
	}
	return nil
}
