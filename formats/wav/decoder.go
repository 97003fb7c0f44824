package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/drumscribe/audio"
	"github.com/ik5/drumscribe/utils"
)

const (
	formatPCM        = 0x0001
	formatExtensible = 0xFFFE

	minFmtSize        = 16
	extensibleFmtSize = 26
)

// pcmFormat is the subset of the fmt chunk the decoder needs.
type pcmFormat struct {
	channels   int
	sampleRate int
	bitDepth   int
}

// Parse decodes a complete RIFF/WAVE buffer holding 16 or 24-bit little-endian
// PCM. Only the first data chunk is read. Samples stay interleaved when the
// file declares more than one channel.
//
// Every failure is a *FormatError; no partial Waveform is ever returned.
func Parse(buf []byte) (*audio.Waveform, error) {
	cr, err := newChunkReader(buf)
	if err != nil {
		return nil, err
	}

	var pf *pcmFormat
	for cr.Next() {
		c := cr.Chunk()

		switch c.ID {
		case "fmt ":
			if pf != nil {
				continue
			}
			if pf, err = parseFmt(c); err != nil {
				return nil, err
			}
		case "data":
			if pf == nil {
				return nil, formatErr(c.Offset, ErrMissingFormat, "data chunk before fmt chunk")
			}
			return decodeData(c, pf)
		}
	}

	if err := cr.Err(); err != nil {
		return nil, err
	}

	return nil, formatErr(len(buf), ErrNoDataChunk, "")
}

func parseFmt(c chunk) (*pcmFormat, error) {
	b := c.Body
	if len(b) < minFmtSize {
		return nil, formatErr(c.Offset, ErrMissingFormat, "fmt chunk is %d bytes, need %d", len(b), minFmtSize)
	}

	tag := binary.LittleEndian.Uint16(b[0:2])
	if tag == formatExtensible && len(b) >= extensibleFmtSize {
		// The first two bytes of the sub-format GUID carry the real tag.
		tag = binary.LittleEndian.Uint16(b[24:26])
	}
	if tag != formatPCM {
		return nil, formatErr(c.Offset, ErrUnsupportedFormat, "format tag 0x%04x is not PCM", tag)
	}

	pf := &pcmFormat{
		channels:   int(binary.LittleEndian.Uint16(b[2:4])),
		sampleRate: int(binary.LittleEndian.Uint32(b[4:8])),
		bitDepth:   int(binary.LittleEndian.Uint16(b[14:16])),
	}

	switch {
	case pf.bitDepth != 16 && pf.bitDepth != 24:
		return nil, formatErr(c.Offset, ErrUnsupportedFormat, "%d-bit samples", pf.bitDepth)
	case pf.channels == 0:
		return nil, formatErr(c.Offset, ErrUnsupportedFormat, "zero channels")
	case pf.sampleRate == 0:
		return nil, formatErr(c.Offset, ErrUnsupportedFormat, "zero sample rate")
	}

	return pf, nil
}

func decodeData(c chunk, pf *pcmFormat) (*audio.Waveform, error) {
	width := pf.bitDepth / 8
	body := c.Body

	if c.truncated() && len(body)%width != 0 {
		return nil, formatErr(c.Offset+chunkHeaderSize+len(body), ErrTruncated,
			"data ends mid-sample (%d of %d declared bytes)", len(body), c.Size)
	}

	n := len(body) / width
	wf := &audio.Waveform{
		Samples:    make([]float32, n),
		SampleRate: pf.sampleRate,
		Channels:   pf.channels,
	}

	switch pf.bitDepth {
	case 16:
		for i := range n {
			v := int16(binary.LittleEndian.Uint16(body[2*i:]))
			wf.Samples[i] = utils.PCMToFloat(int(v), 16)
		}
	case 24:
		for i := range n {
			b := body[3*i : 3*i+3]
			// Shift into the top of an int32 so the arithmetic shift back
			// sign-extends bit 23.
			v := int32(uint32(b[0])<<8|uint32(b[1])<<16|uint32(b[2])<<24) >> 8
			wf.Samples[i] = utils.PCMToFloat(int(v), 24)
		}
	}

	return wf, nil
}

// Decoder adapts Parse to the audio.Decoder interface. The whole stream is
// read into memory before parsing.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	wf, err := Parse(buf)
	if err != nil {
		return nil, err
	}

	return audio.NewWaveformSource(wf), nil
}
