// SPDX-License-Identifier: EPL-2.0

package sequence

import "math"

// Grid is a tempo and note subdivision. Subdivision counts notes per whole
// note, so 8 is eighth notes and 16 is sixteenth notes.
type Grid struct {
	BPM         float64
	Subdivision int
}

// StepMs is the length of one grid cell in milliseconds.
func (g Grid) StepMs() float64 {
	beatMs := 60000 / g.BPM
	return beatMs / (float64(g.Subdivision) / 4)
}

// Quantize snaps t to the nearest grid point. Halfway values round away
// from zero.
func (g Grid) Quantize(t float64) float64 {
	step := g.StepMs()
	return math.Round(t/step) * step
}
