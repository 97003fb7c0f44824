package audio_test

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/drumscribe/audio"
	"github.com/ik5/drumscribe/internal/audiotest"
)

func TestWaveform_Duration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		wf   audio.Waveform
		want float64
	}{
		{"two seconds mono", audio.Waveform{Samples: make([]float32, 88200), SampleRate: 44100, Channels: 1}, 2000},
		{"stereo counts frames", audio.Waveform{Samples: make([]float32, 16000), SampleRate: 8000, Channels: 2}, 1000},
		{"zero channels treated as mono", audio.Waveform{Samples: make([]float32, 8000), SampleRate: 8000}, 1000},
		{"no rate", audio.Waveform{Samples: make([]float32, 10)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.wf.DurationMs(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DurationMs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWaveformSource_ReadsEverything(t *testing.T) {
	t.Parallel()

	wf := &audio.Waveform{Samples: []float32{0.1, 0.2, 0.3, 0.4, 0.5}, SampleRate: 8000, Channels: 1}
	src := audio.NewWaveformSource(wf)

	buf := make([]float32, 2)
	var got []float32
	for {
		n, err := src.ReadSamples(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(wf.Samples) {
		t.Fatalf("read %d samples, want %d", len(got), len(wf.Samples))
	}
	for i := range got {
		if got[i] != wf.Samples[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], wf.Samples[i])
		}
	}
}

func TestWaveformSource_FrameAligned(t *testing.T) {
	t.Parallel()

	wf := &audio.Waveform{Samples: []float32{1, 2, 3, 4, 5, 6}, SampleRate: 8000, Channels: 2}
	src := audio.NewWaveformSource(wf)

	buf := make([]float32, 3)
	n, err := src.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 2 {
		t.Errorf("ReadSamples() n = %d, want 2 (one stereo frame)", n)
	}

	if _, err := src.ReadSamples(buf[:1]); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples(1) error = %v, want ErrInvalidDstSize", err)
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(16000, 2, 5000, 440)
	wf, err := audio.Collect(src, 1001)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if wf.SampleRate != 16000 || wf.Channels != 2 {
		t.Errorf("Collect() = %d Hz / %d ch, want 16000 Hz / 2 ch", wf.SampleRate, wf.Channels)
	}
	if len(wf.Samples) != 10000 {
		t.Errorf("Collect() gathered %d samples, want 10000", len(wf.Samples))
	}
}

func TestCollect_InvalidSource(t *testing.T) {
	t.Parallel()

	if _, err := audio.Collect(audiotest.NewSilentSource(0, 1, 10), 0); !errors.Is(err, audio.ErrInvalidRate) {
		t.Errorf("Collect() error = %v, want ErrInvalidRate", err)
	}
	if _, err := audio.Collect(audiotest.NewSilentSource(8000, 0, 10), 0); !errors.Is(err, audio.ErrInvalidChannels) {
		t.Errorf("Collect() error = %v, want ErrInvalidChannels", err)
	}
}
