// SPDX-License-Identifier: EPL-2.0

package wav

import "encoding/binary"

const (
	riffHeaderSize  = 12
	chunkHeaderSize = 8
)

// chunk is one RIFF sub-chunk. Body aliases the parsed buffer and may be
// shorter than Size when the buffer ends early.
type chunk struct {
	ID     string
	Size   int
	Offset int // position of the chunk header
	Body   []byte
}

// truncated reports whether the buffer ended before the declared size.
func (c chunk) truncated() bool { return len(c.Body) < c.Size }

// chunkReader walks the sub-chunks that follow the RIFF/WAVE header.
//
//	cr := newChunkReader(buf)
//	for cr.Next() {
//	    c := cr.Chunk()
//	}
//	if err := cr.Err(); err != nil { ... }
type chunkReader struct {
	buf []byte
	off int
	cur chunk
	err error
}

// newChunkReader validates the RIFF/WAVE signature and positions the reader
// at the first sub-chunk.
func newChunkReader(buf []byte) (*chunkReader, error) {
	if len(buf) < riffHeaderSize {
		return nil, formatErr(0, ErrNotWavFile, "%d byte buffer is shorter than the RIFF header", len(buf))
	}
	if string(buf[0:4]) != "RIFF" || string(buf[8:12]) != "WAVE" {
		return nil, formatErr(0, ErrNotWavFile, "missing RIFF/WAVE signature")
	}

	return &chunkReader{buf: buf, off: riffHeaderSize}, nil
}

// Next advances to the following chunk. It returns false at the end of the
// buffer or on error; check Err afterwards.
func (r *chunkReader) Next() bool {
	if r.err != nil || r.off >= len(r.buf) {
		return false
	}

	if len(r.buf)-r.off < chunkHeaderSize {
		r.err = formatErr(r.off, ErrTruncated, "chunk header needs %d bytes, %d left", chunkHeaderSize, len(r.buf)-r.off)
		return false
	}

	hdr := r.buf[r.off : r.off+chunkHeaderSize]
	size := int(binary.LittleEndian.Uint32(hdr[4:8]))
	start := r.off + chunkHeaderSize
	end := min(start+size, len(r.buf))

	r.cur = chunk{
		ID:     string(hdr[0:4]),
		Size:   size,
		Offset: r.off,
		Body:   r.buf[start:end],
	}

	// RIFF chunks are word aligned: odd sizes carry a pad byte.
	r.off = start + size + size%2

	return true
}

func (r *chunkReader) Chunk() chunk { return r.cur }

func (r *chunkReader) Err() error { return r.err }
