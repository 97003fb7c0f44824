// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"math"

	"github.com/ik5/drumscribe/audio"
)

// FrameOptions are the framing parameters of the onset-strength analysis.
type FrameOptions struct {
	// FrameSize is the analysis window in samples.
	FrameSize int
	// HopSize is the distance between consecutive frame starts in samples.
	HopSize int
	// SmoothWindow is the width, in frames, of the centered moving average
	// applied to the flux curve.
	SmoothWindow int
	// FluxFloor is the smallest divisor used when normalizing flux, so a
	// near-silent signal is not blown up to full scale.
	FluxFloor float64
}

func DefaultFrameOptions() FrameOptions {
	return FrameOptions{
		FrameSize:    1024,
		HopSize:      256,
		SmoothWindow: 5,
		FluxFloor:    0.001,
	}
}

// Frames holds the per-frame curves of one waveform. Flux and Energy have one
// entry per frame.
type Frames struct {
	// Flux is the smoothed onset strength scaled into [0,1].
	Flux []float64
	// Energy is the RMS of each frame.
	Energy []float64

	FrameSize  int
	HopSize    int
	SampleRate int
	// MsPerFrame is HopSize expressed in milliseconds.
	MsPerFrame float64
}

// Len is the number of analysed frames.
func (f *Frames) Len() int { return len(f.Flux) }

// TimeMs is the start of frame i in milliseconds.
func (f *Frames) TimeMs(i int) float64 {
	return float64(i*f.HopSize) / float64(f.SampleRate) * 1000
}

// frameCount is the number of whole frames that fit in n samples.
func frameCount(n, frameSize, hopSize int) int {
	if n < frameSize {
		return 0
	}
	return (n-frameSize)/hopSize + 1
}

// Analyze frames wf.Samples (treated as mono) and computes RMS energy plus a
// spectral-flux proxy per frame.
//
// The flux proxy is not a frequency-domain measure: it is the half-wave
// rectified difference of instantaneous power between a frame and the frame
// one hop earlier, compared sample by sample and summed. Zero-valued
// options fall back to DefaultFrameOptions.
func Analyze(wf *audio.Waveform, opts FrameOptions) *Frames {
	opts = opts.withDefaults()
	samples := wf.Samples
	n := frameCount(len(samples), opts.FrameSize, opts.HopSize)

	out := &Frames{
		Energy:     make([]float64, n),
		FrameSize:  opts.FrameSize,
		HopSize:    opts.HopSize,
		SampleRate: wf.SampleRate,
		MsPerFrame: float64(opts.HopSize) / float64(wf.SampleRate) * 1000,
	}

	flux := make([]float64, n)
	prev := make([]float64, opts.FrameSize)
	cur := make([]float64, opts.FrameSize)

	for i := range n {
		frame := samples[i*opts.HopSize : i*opts.HopSize+opts.FrameSize]

		var sum, diff float64
		for j, s := range frame {
			p := float64(s) * float64(s)
			cur[j] = p
			sum += p
			if d := p - prev[j]; d > 0 {
				diff += d
			}
		}

		out.Energy[i] = math.Sqrt(sum / float64(opts.FrameSize))
		flux[i] = diff
		prev, cur = cur, prev
	}

	out.Flux = normalize(movingAverage(flux, opts.SmoothWindow), opts.FluxFloor)

	return out
}

func (o FrameOptions) withDefaults() FrameOptions {
	d := DefaultFrameOptions()
	if o.FrameSize <= 0 {
		o.FrameSize = d.FrameSize
	}
	if o.HopSize <= 0 {
		o.HopSize = d.HopSize
	}
	if o.SmoothWindow <= 0 {
		o.SmoothWindow = d.SmoothWindow
	}
	if o.FluxFloor <= 0 {
		o.FluxFloor = d.FluxFloor
	}
	return o
}

// movingAverage is a centered mean over window frames. Near the edges the
// window is truncated and the mean covers only the frames that exist.
func movingAverage(x []float64, window int) []float64 {
	out := make([]float64, len(x))
	half := window / 2

	for i := range x {
		lo := max(0, i-half)
		hi := min(len(x)-1, i+half)

		var sum float64
		for _, v := range x[lo : hi+1] {
			sum += v
		}
		out[i] = sum / float64(hi-lo+1)
	}

	return out
}

// normalize divides x in place by its maximum, never by less than floor.
func normalize(x []float64, floor float64) []float64 {
	peak := floor
	for _, v := range x {
		peak = max(peak, v)
	}
	for i := range x {
		x[i] /= peak
	}
	return x
}
