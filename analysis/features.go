package analysis

import "math"

// Band split points as fractions of the feature window.
const (
	lowBandEnd = 0.15
	midBandEnd = 0.5
)

// BandEnergy is the mean absolute amplitude of three consecutive slices of
// the feature window.
//
// The slices are taken by sample position (first 15%, next 35%, last 50%),
// not by frequency.
type BandEnergy struct {
	Low  float64 `json:"low"`
	Mid  float64 `json:"mid"`
	High float64 `json:"high"`
}

// Features describe the samples right after an onset.
type Features struct {
	// Amplitude is the peak absolute sample value.
	Amplitude float64 `json:"amplitude"`
	// ZCR is the fraction of adjacent sample pairs that change sign.
	ZCR        float64    `json:"zcr"`
	BandEnergy BandEnergy `json:"bandEnergy"`
}

// Extract computes the features of one analysis window.
func Extract(window []float32) Features {
	return Features{
		Amplitude:  PeakAmplitude(window),
		ZCR:        ZeroCrossingRate(window),
		BandEnergy: PositionalBandEnergy(window),
	}
}

func PeakAmplitude(window []float32) float64 {
	var peak float64
	for _, s := range window {
		peak = max(peak, math.Abs(float64(s)))
	}
	return peak
}

// ZeroCrossingRate counts sign changes between neighbours, treating zero as
// positive, and divides by the number of pairs (at least one).
func ZeroCrossingRate(window []float32) float64 {
	var crossings int
	for i := 1; i < len(window); i++ {
		if (window[i] >= 0) != (window[i-1] >= 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(max(len(window)-1, 1))
}

func PositionalBandEnergy(window []float32) BandEnergy {
	var sums [3]float64
	var counts [3]int

	n := float64(len(window))
	for i, s := range window {
		band := 2
		switch {
		case float64(i) < n*lowBandEnd:
			band = 0
		case float64(i) < n*midBandEnd:
			band = 1
		}
		sums[band] += math.Abs(float64(s))
		counts[band]++
	}

	var out [3]float64
	for b := range sums {
		if counts[b] > 0 {
			out[b] = sums[b] / float64(counts[b])
		}
	}

	return BandEnergy{Low: out[0], Mid: out[1], High: out[2]}
}
