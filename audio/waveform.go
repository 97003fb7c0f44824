// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Waveform is a fully decoded block of PCM audio.
//
// Samples are interleaved float32 values in [-1,1]. The analysis stages treat
// a Waveform as a single mono stream, so callers mix down first (see
// MonoMixer) when Channels > 1.
type Waveform struct {
	Samples    []float32
	SampleRate int
	Channels   int
}

// Frames returns the number of sample frames (samples per channel).
func (w *Waveform) Frames() int {
	ch := max(w.Channels, 1)
	return len(w.Samples) / ch
}

// DurationMs is the playing time of the waveform in milliseconds.
func (w *Waveform) DurationMs() float64 {
	if w.SampleRate <= 0 {
		return 0
	}
	return float64(w.Frames()) / float64(w.SampleRate) * 1000
}

// WaveformSource streams an in-memory Waveform through the Source interface.
type WaveformSource struct {
	wf  *Waveform
	pos int
}

func NewWaveformSource(wf *Waveform) *WaveformSource {
	return &WaveformSource{wf: wf}
}

func (s *WaveformSource) SampleRate() int { return s.wf.SampleRate }
func (s *WaveformSource) Channels() int   { return max(s.wf.Channels, 1) }
func (s *WaveformSource) BufSize() int    { return 4096 }
func (s *WaveformSource) Close() error    { return nil }

func (s *WaveformSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.wf.Samples) {
		return 0, io.EOF
	}

	// Keep reads frame aligned so interleaving survives partial reads.
	ch := s.Channels()
	want := len(dst) - len(dst)%ch
	if want == 0 {
		return 0, ErrInvalidDstSize
	}

	n := copy(dst[:want], s.wf.Samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.wf.Samples) {
		return n, io.EOF
	}
	return n, nil
}

// Collect drains src into a Waveform. bufSize controls the read chunk; a
// non-positive value falls back to src.BufSize().
func Collect(src Source, bufSize int) (*Waveform, error) {
	if src.SampleRate() <= 0 {
		return nil, ErrInvalidRate
	}
	if src.Channels() <= 0 {
		return nil, ErrInvalidChannels
	}

	if bufSize <= 0 {
		bufSize = src.BufSize()
	}
	// Round to whole frames so multi-channel sources never split a frame.
	ch := src.Channels()
	bufSize = max(bufSize-bufSize%ch, ch)

	wf := &Waveform{
		SampleRate: src.SampleRate(),
		Channels:   ch,
		Samples:    make([]float32, 0, src.SampleRate()*ch),
	}
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			wf.Samples = append(wf.Samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("collecting samples: %w", err)
		}

		// A source that makes no progress without signalling EOF is done.
		if n == 0 {
			break
		}
	}

	return wf, nil
}
