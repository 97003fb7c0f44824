// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"math"

	"github.com/ik5/drumscribe/audio"
)

// OnsetOptions control peak picking on the normalized flux curve.
type OnsetOptions struct {
	// Threshold is the normalized flux a peak must exceed, in (0,1].
	Threshold float64
	// MinInterOnsetMs is the refractory gap after an accepted onset.
	MinInterOnsetMs float64
}

// Candidate is one detected onset before quantization.
type Candidate struct {
	Frame  int
	TimeMs float64
	Features
}

// maxRefractoryFrames caps the refractory distance. Any gap this long
// already spans every frame of a realistic clip.
const maxRefractoryFrames = math.MaxInt32

// RefractoryFrames converts the refractory gap into whole frames, rounding
// up so accepted onsets are never closer than MinInterOnsetMs. At least one
// frame always separates two onsets.
func (o OnsetOptions) RefractoryFrames(msPerFrame float64) int {
	if msPerFrame <= 0 {
		return 1
	}

	f := math.Ceil(o.MinInterOnsetMs / msPerFrame)
	if f >= maxRefractoryFrames {
		return maxRefractoryFrames
	}
	return max(1, int(f))
}

// DetectOnsets peak-picks fr.Flux and extracts features for every accepted
// frame from wf. A frame i qualifies when its flux is above the threshold,
// strictly above frame i-1, not below frame i+1, and at least the refractory
// distance past the previous onset. The first and last frames are never
// candidates. No onsets is a valid result and yields an empty slice.
func DetectOnsets(wf *audio.Waveform, fr *Frames, opts OnsetOptions) []Candidate {
	flux := fr.Flux
	minFrames := opts.RefractoryFrames(fr.MsPerFrame)
	last, seen := 0, false

	onsets := []Candidate{}
	for i := 1; i < len(flux)-1; i++ {
		if flux[i] <= opts.Threshold ||
			flux[i] <= flux[i-1] ||
			flux[i] < flux[i+1] ||
			(seen && i-last < minFrames) {
			continue
		}

		start := i * fr.HopSize
		window := min(2*fr.FrameSize, len(wf.Samples)-start)

		onsets = append(onsets, Candidate{
			Frame:    i,
			TimeMs:   fr.TimeMs(i),
			Features: Extract(wf.Samples[start : start+window]),
		})
		last, seen = i, true
	}

	return onsets
}

// SilentFrames counts frames whose RMS energy is below threshold.
func SilentFrames(energy []float64, threshold float64) int {
	var n int
	for _, e := range energy {
		if e < threshold {
			n++
		}
	}
	return n
}
