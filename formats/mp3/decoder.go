// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/drumscribe/audio"
	"github.com/ik5/drumscribe/utils"
)

// go-mp3 always emits interleaved stereo, 16-bit little-endian.
const (
	channels       = 2
	bytesPerSample = 2
	frameBytes     = channels * bytesPerSample

	// maxEmptyReads bounds consecutive (0, nil) reads, as bufio does.
	maxEmptyReads = 100
)

// pcmReader is the part of gomp3.Decoder the source needs; tests swap it out.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec  pcmReader
	rate int
	buf  []byte
	// carry holds the bytes of a partial frame from a short read.
	carry []byte
}

func newSource(dec pcmReader) *source {
	return &source{
		dec:  dec,
		rate: dec.SampleRate(),
		buf:  make([]byte, 8192),
	}
}

func (s *source) SampleRate() int { return s.rate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	usable := len(dst) - len(dst)%channels
	if usable == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	need := usable * bytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n := copy(s.buf, s.carry)
	s.carry = s.carry[:0]

	// Read until at least one whole frame is buffered.
	var err error
	for empty := 0; n < frameBytes && err == nil; {
		var m int
		m, err = s.dec.Read(s.buf[n:])
		n += m

		if m > 0 {
			empty = 0
			continue
		}
		if empty++; empty >= maxEmptyReads && err == nil {
			err = io.ErrNoProgress
		}
	}

	whole := n - n%frameBytes
	samples := whole / bytesPerSample
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[i*bytesPerSample:]))
		dst[i] = utils.PCMToFloat(int(v), 16)
	}
	s.carry = append(s.carry, s.buf[whole:n]...)

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("mp3: %w", err)
	}
	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	return newSource(dec), nil
}
