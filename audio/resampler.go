// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/drumscribe/utils"
)

// lowPassAlpha is the coefficient of the one-pole smoothing applied before
// downsampling. It is a coarse anti-aliasing stage, not a brick-wall filter.
const lowPassAlpha = 0.5

// Resample converts wf to dstRate using Catmull-Rom cubic interpolation.
// Interleaved channels are resampled independently. A waveform already at
// dstRate is returned as is.
func Resample(wf *Waveform, dstRate int) (*Waveform, error) {
	if dstRate <= 0 || wf.SampleRate <= 0 {
		return nil, ErrInvalidRate
	}
	if wf.SampleRate == dstRate {
		return wf, nil
	}

	channels := max(wf.Channels, 1)
	frames := wf.Frames()
	ratio := float64(wf.SampleRate) / float64(dstRate)
	outFrames := int(int64(frames) * int64(dstRate) / int64(wf.SampleRate))

	out := &Waveform{
		Samples:    make([]float32, outFrames*channels),
		SampleRate: dstRate,
		Channels:   channels,
	}
	if frames == 0 {
		return out, nil
	}

	plane := make([]float32, frames)
	for c := range channels {
		for f := range frames {
			plane[f] = wf.Samples[f*channels+c]
		}
		if ratio > 1 {
			smooth(plane)
		}

		at := func(i int) float32 {
			return plane[min(max(i, 0), frames-1)]
		}

		for k := range outFrames {
			pos := float64(k) * ratio
			i := int(pos)
			frac := float32(pos - float64(i))
			out.Samples[k*channels+c] = utils.CubicInterpolate(at(i-1), at(i), at(i+1), at(i+2), frac)
		}
	}

	return out, nil
}

// smooth runs the one-pole low-pass filter y[n] = a*x[n] + (1-a)*y[n-1] in
// place, seeding the state with the first sample to avoid a start transient.
func smooth(x []float32) {
	state := x[0]
	for i, v := range x {
		state = lowPassAlpha*v + (1-lowPassAlpha)*state
		x[i] = state
	}
}
