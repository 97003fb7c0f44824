// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/drumscribe/audio"
)

func sine(rate, frames int, freq float64) *audio.Waveform {
	wf := &audio.Waveform{Samples: make([]float32, frames), SampleRate: rate, Channels: 1}
	for i := range wf.Samples {
		wf.Samples[i] = float32(math.Sin(2 * math.Pi * freq * float64(i) / float64(rate)))
	}
	return wf
}

func TestResample_Lengths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		srcRate  int
		dstRate  int
		frames   int
		channels int
		want     int
	}{
		{"downsample 44.1k to 8k", 44100, 8000, 44100, 1, 8000},
		{"upsample 8k to 16k", 8000, 16000, 8000, 1, 16000},
		{"48k to 44.1k", 48000, 44100, 48000, 1, 44100},
		{"stereo keeps interleaving", 22050, 44100, 100, 2, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wf := &audio.Waveform{
				Samples:    make([]float32, tt.frames*tt.channels),
				SampleRate: tt.srcRate,
				Channels:   tt.channels,
			}

			out, err := audio.Resample(wf, tt.dstRate)
			if err != nil {
				t.Fatalf("Resample() error = %v", err)
			}
			if out.SampleRate != tt.dstRate {
				t.Errorf("SampleRate = %d, want %d", out.SampleRate, tt.dstRate)
			}
			if len(out.Samples) != tt.want {
				t.Errorf("len(Samples) = %d, want %d", len(out.Samples), tt.want)
			}
		})
	}
}

func TestResample_PreservesLowFrequency(t *testing.T) {
	t.Parallel()

	in := sine(8000, 8000, 100)
	out, err := audio.Resample(in, 16000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}

	// Upsampling applies no filter, so every other output sample lands on an input sample.
	for k := 0; k < len(out.Samples); k += 2 {
		if math.Abs(float64(out.Samples[k]-in.Samples[k/2])) > 1e-5 {
			t.Fatalf("sample %d = %v, want %v", k, out.Samples[k], in.Samples[k/2])
		}
	}
}

func TestResample_SameRateIsIdentity(t *testing.T) {
	t.Parallel()

	in := sine(44100, 100, 440)
	out, err := audio.Resample(in, 44100)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if out != in {
		t.Error("Resample() at the same rate should return the input")
	}
}

func TestResample_InvalidRate(t *testing.T) {
	t.Parallel()

	if _, err := audio.Resample(sine(8000, 10, 100), 0); !errors.Is(err, audio.ErrInvalidRate) {
		t.Errorf("Resample() error = %v, want ErrInvalidRate", err)
	}
}

func BenchmarkResample(b *testing.B) {
	in := sine(48000, 48000, 440)

	b.ReportAllocs()

	for b.Loop() {
		_, _ = audio.Resample(in, 44100)
	}
}
